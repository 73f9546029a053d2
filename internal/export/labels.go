package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/summitcrm/RoofScope/internal/model"
)

// LabelInfo holds the data encoded into each material label's QR code,
// scanned at the supply yard to pull the right quantities for a job.
type LabelInfo struct {
	JobName  string  `json:"job"`
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Bundles  int     `json:"bundles,omitempty"`
	WastePct float64 `json:"waste_pct"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns,
// 10 rows per page). Each label cell is approximately 66.7mm x 25.4mm
// on US Letter paper.
const (
	labelPageHeight = 279.4 // US Letter height in mm
	labelMarginTop  = 12.7  // mm
	labelMarginLeft = 4.8   // mm
	labelWidth      = 66.7  // mm per label
	labelHeight     = 25.4  // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded pick labels, one per
// material line with a non-zero order quantity. Labels are laid out on
// a standard label sheet format (Avery 5160 / 3 columns x 10 rows on
// US Letter).
func ExportLabels(path string, est model.MaterialEstimate, jobName string) error {
	var labels []LabelInfo
	for _, item := range est.Items {
		if item.WithWaste <= 0 {
			continue
		}
		labels = append(labels, LabelInfo{
			JobName:  jobName,
			Material: item.Name,
			Quantity: item.WithWaste,
			Unit:     item.Unit,
			Bundles:  item.Bundles,
			WastePct: est.WastePercent,
		})
	}
	if len(labels) == 0 {
		return fmt.Errorf("no materials with non-zero quantities to label")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		slot := i % labelsPerPage
		col := slot % labelCols
		row := slot / labelCols
		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, label, x, y); err != nil {
			return err
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws one label cell: QR code on the left, material name
// and quantity on the right.
func renderLabel(pdf *fpdf.Fpdf, label LabelInfo, x, y float64) error {
	payload, err := json.Marshal(label)
	if err != nil {
		return fmt.Errorf("failed to encode label payload: %w", err)
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code for %s: %w", label.Material, err)
	}

	imgName := fmt.Sprintf("qr-%s-%s", label.JobName, label.Material)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize,
		false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding + qrSize + 2

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(textX, y+labelPadding+2)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4, label.Material, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	qty := fmt.Sprintf("%.0f %s", label.Quantity, label.Unit)
	if label.Bundles > 0 {
		qty = fmt.Sprintf("%d bundles", label.Bundles)
	}
	pdf.SetXY(textX, y+labelPadding+7)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4, qty, "", 0, "L", false, 0, "")

	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4,
		fmt.Sprintf("waste %.0f%%", label.WastePct), "", 0, "L", false, 0, "")

	if label.JobName != "" {
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetXY(textX, y+labelPadding+15)
		pdf.CellFormat(labelWidth-qrSize-3*labelPadding, 4, label.JobName, "", 0, "L", false, 0, "")
	}
	return nil
}
