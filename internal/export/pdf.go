// Package export provides functionality for exporting roof measurements
// and material estimates to various file formats.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/summitcrm/RoofScope/internal/geo"
	"github.com/summitcrm/RoofScope/internal/model"
)

// edgeColor represents an RGB color for a classified edge type.
type edgeColor struct {
	R, G, B int
}

// edgeColors mirrors the color scheme used on the CRM's measurement
// overlay.
var edgeColors = map[model.EdgeType]edgeColor{
	model.EdgeEave:   {R: 33, G: 150, B: 243}, // blue
	model.EdgeRake:   {R: 76, G: 175, B: 80},  // green
	model.EdgeRidge:  {R: 244, G: 67, B: 54},  // red
	model.EdgeValley: {R: 0, G: 188, B: 212},  // cyan
	model.EdgeHip:    {R: 156, G: 39, B: 176}, // purple
}

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	planHeight   = 110.0
)

// ReportOptions carries the report header fields.
type ReportOptions struct {
	JobName     string
	CompanyName string
}

// ExportPDF generates a single-document estimate report: measurement
// summary, a scaled roof plan when measured segments exist, and the
// material takeoff table.
func ExportPDF(path string, metrics model.RoofMetrics, est model.MaterialEstimate, opts ReportOptions) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	y := renderHeader(pdf, metrics, opts)
	y = renderMeasurements(pdf, metrics, y)

	if len(metrics.Segments) > 0 {
		y = renderRoofPlan(pdf, metrics, y)
	}

	renderMaterialsTable(pdf, est, y)

	return pdf.OutputFileAndClose(path)
}

// renderHeader draws the title block and returns the next free y.
func renderHeader(pdf *fpdf.Fpdf, metrics model.RoofMetrics, opts ReportOptions) float64 {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	title := "Roof Measurement & Material Estimate"
	if opts.JobName != "" {
		title = fmt.Sprintf("%s — %s", title, opts.JobName)
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, title, "", 0, "L", false, 0, "")

	y := marginTop + 10
	if opts.CompanyName != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 5, opts.CompanyName, "", 0, "L", false, 0, "")
		y += 6
	}

	if metrics.IsEstimated {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(160, 5, "ESTIMATED — derived from total area only, not measured segments", "", 0, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 6
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, y+1, pageWidth-marginRight, y+1)
	return y + 5
}

// renderMeasurements draws the measurement summary block.
func renderMeasurements(pdf *fpdf.Fpdf, m model.RoofMetrics, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Measurements", "", 0, "L", false, 0, "")
	y += 8

	rows := []struct {
		label string
		value string
	}{
		{"Total roof area", fmt.Sprintf("%.0f sq ft (%d squares)", m.TotalAreaSqFt, m.Squares())},
		{"Predominant pitch", m.PitchLabel()},
		{"Perimeter", fmt.Sprintf("%.0f ft", m.PerimeterFeet)},
		{"Eaves", fmt.Sprintf("%.0f ft", m.EavesFeet)},
		{"Rakes", fmt.Sprintf("%.0f ft", m.RakesFeet)},
		{"Ridges", fmt.Sprintf("%.0f ft", m.RidgesFeet)},
		{"Valleys", fmt.Sprintf("%.0f ft", m.ValleysFeet)},
		{"Hips", fmt.Sprintf("%.0f ft", m.HipsFeet)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(50, 5, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 5, row.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 5.5
	}
	return y + 4
}

// renderRoofPlan draws the classified segment edges to scale in a
// local flat projection, colored by edge type with a legend.
func renderRoofPlan(pdf *fpdf.Fpdf, m model.RoofMetrics, y float64) float64 {
	// Project all edge endpoints into a local frame anchored at the
	// minimum corner.
	origin := m.Segments[0].Coordinates[0]
	for _, e := range m.Segments {
		for _, c := range e.Coordinates {
			if c.Latitude < origin.Latitude {
				origin.Latitude = c.Latitude
			}
			if c.Longitude < origin.Longitude {
				origin.Longitude = c.Longitude
			}
		}
	}

	type line struct {
		x1, y1, x2, y2 float64
		edgeType       model.EdgeType
	}
	var lines []line
	var maxX, maxY float64
	for _, e := range m.Segments {
		x1, y1 := geo.LocalXY(origin, e.Coordinates[0])
		x2, y2 := geo.LocalXY(origin, e.Coordinates[1])
		lines = append(lines, line{x1, y1, x2, y2, e.Type})
		maxX = math.Max(maxX, math.Max(x1, x2))
		maxY = math.Max(maxY, math.Max(y1, y2))
	}
	if maxX <= 0 || maxY <= 0 {
		return y
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Roof Plan", "", 0, "L", false, 0, "")
	y += 9

	drawWidth := pageWidth - marginLeft - marginRight
	scale := math.Min(drawWidth/maxX, planHeight/maxY)
	canvasW := maxX * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2

	for _, l := range lines {
		col := edgeColors[l.edgeType]
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.6)
		// Flip y so north is up on the page.
		pdf.Line(offsetX+l.x1*scale, y+(maxY-l.y1)*scale,
			offsetX+l.x2*scale, y+(maxY-l.y2)*scale)
	}
	y += maxY*scale + 4

	// Legend
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	xPos := marginLeft
	for _, t := range []model.EdgeType{model.EdgeEave, model.EdgeRake, model.EdgeRidge, model.EdgeValley, model.EdgeHip} {
		col := edgeColors[t]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, y, 3, 3, "F")
		pdf.SetXY(xPos+4, y-0.5)
		pdf.CellFormat(20, 4, t.String(), "", 0, "L", false, 0, "")
		xPos += 28
	}
	return y + 8
}

// renderMaterialsTable draws the takeoff table with raw and with-waste
// columns.
func renderMaterialsTable(pdf *fpdf.Fpdf, est model.MaterialEstimate, y float64) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(120, 7, fmt.Sprintf("Materials (waste %.0f%%)", est.WastePercent), "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{45, 40, 28, 28, 24}
	headers := []string{"Material", "Source", "Raw", "With waste", "Unit"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, item := range est.Items {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		rowData := []string{
			item.Name,
			item.Source,
			fmt.Sprintf("%.0f", item.Raw),
			fmt.Sprintf("%.0f", item.WithWaste),
			item.Unit,
		}
		xPos = marginLeft
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	y += 4
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(160, 6,
		fmt.Sprintf("Shingle order: %d squares / %d bundles", est.ShingleSquares, est.ShingleBundles),
		"", 0, "L", false, 0, "")

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by RoofScope - Roof Measurement & Material Estimator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
