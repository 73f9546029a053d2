package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/summitcrm/RoofScope/internal/model"
)

func TestExportXLSX(t *testing.T) {
	metrics := exportTestMetrics()
	est := model.CalculateMaterials(metrics, 10)
	path := filepath.Join(t.TempDir(), "estimate.xlsx")

	if err := ExportXLSX(path, metrics, est); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	assertFileWritten(t, path)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Measurements" || sheets[1] != "Materials" {
		t.Errorf("unexpected sheets: %v", sheets)
	}

	area, err := f.GetCellValue("Measurements", "B2")
	if err != nil {
		t.Fatal(err)
	}
	if area != "1000" {
		t.Errorf("total area cell = %q, want 1000", area)
	}

	name, err := f.GetCellValue("Materials", "A2")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Starter strip" {
		t.Errorf("first material = %q, want Starter strip", name)
	}
}
