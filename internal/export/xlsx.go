package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/summitcrm/RoofScope/internal/model"
)

// Sheet names in the exported workbook.
const (
	sheetMeasurements = "Measurements"
	sheetMaterials    = "Materials"
)

// ExportXLSX writes the measurements and material takeoff to an Excel
// workbook, one sheet each, for estimators who price jobs in
// spreadsheets.
func ExportXLSX(path string, metrics model.RoofMetrics, est model.MaterialEstimate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetMeasurements); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetMaterials); err != nil {
		return fmt.Errorf("failed to add materials sheet: %w", err)
	}

	if err := writeMeasurements(f, metrics); err != nil {
		return err
	}
	if err := writeMaterials(f, est); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeMeasurements(f *excelize.File, m model.RoofMetrics) error {
	rows := [][]interface{}{
		{"Measurement", "Value", "Unit"},
		{"Total roof area", m.TotalAreaSqFt, "sq ft"},
		{"Roofing squares", m.Squares(), "squares"},
		{"Predominant pitch", m.PitchLabel(), ""},
		{"Perimeter", m.PerimeterFeet, "ft"},
		{"Eaves", m.EavesFeet, "ft"},
		{"Rakes", m.RakesFeet, "ft"},
		{"Ridges", m.RidgesFeet, "ft"},
		{"Valleys", m.ValleysFeet, "ft"},
		{"Hips", m.HipsFeet, "ft"},
		{"Estimated", m.IsEstimated, ""},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetMeasurements, cell, &row); err != nil {
			return fmt.Errorf("failed to write measurement row: %w", err)
		}
	}

	return f.SetColWidth(sheetMeasurements, "A", "A", 22)
}

func writeMaterials(f *excelize.File, est model.MaterialEstimate) error {
	rows := [][]interface{}{
		{"Material", "Source", "Raw", "With waste", "Unit", "Squares", "Bundles"},
	}
	for _, item := range est.Items {
		row := []interface{}{item.Name, item.Source, item.Raw, item.WithWaste, item.Unit, nil, nil}
		if item.Squares > 0 {
			row[5] = item.Squares
		}
		if item.Bundles > 0 {
			row[6] = item.Bundles
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Waste percent", est.WastePercent},
		[]interface{}{"Shingle squares", est.ShingleSquares},
		[]interface{}{"Shingle bundles", est.ShingleBundles},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetMaterials, cell, &row); err != nil {
			return fmt.Errorf("failed to write material row: %w", err)
		}
	}

	return f.SetColWidth(sheetMaterials, "A", "B", 20)
}
