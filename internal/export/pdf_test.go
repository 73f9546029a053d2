package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/summitcrm/RoofScope/internal/model"
)

// exportTestMetrics returns measured metrics with four classified edges
// forming a small rectangle, enough to exercise the plan drawing.
func exportTestMetrics() model.RoofMetrics {
	sw := model.LatLng{Latitude: 40.0, Longitude: -105.0}
	se := model.LatLng{Latitude: 40.0, Longitude: -104.9997}
	ne := model.LatLng{Latitude: 40.0002, Longitude: -104.9997}
	nw := model.LatLng{Latitude: 40.0002, Longitude: -105.0}

	segments := []model.ClassifiedEdge{
		{Type: model.EdgeRidge, LengthFeet: 84, Coordinates: [2]model.LatLng{sw, se}, AzimuthDegrees: 180, PitchDegrees: 26.6},
		{Type: model.EdgeEave, LengthFeet: 73, Coordinates: [2]model.LatLng{se, ne}, AzimuthDegrees: 180, PitchDegrees: 26.6},
		{Type: model.EdgeRidge, LengthFeet: 84, Coordinates: [2]model.LatLng{ne, nw}, AzimuthDegrees: 180, PitchDegrees: 26.6},
		{Type: model.EdgeRake, LengthFeet: 73, Coordinates: [2]model.LatLng{nw, sw}, AzimuthDegrees: 180, PitchDegrees: 26.6},
	}

	return model.RoofMetrics{
		TotalAreaSqFt:    1000,
		PredominantPitch: 6,
		PerimeterFeet:    314,
		EavesFeet:        73,
		RakesFeet:        73,
		RidgesFeet:       168,
		Segments:         segments,
	}
}

func assertFileWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestExportPDF(t *testing.T) {
	metrics := exportTestMetrics()
	est := model.CalculateMaterials(metrics, 10)
	path := filepath.Join(t.TempDir(), "report.pdf")

	opts := ReportOptions{JobName: "Smith residence", CompanyName: "Summit Exteriors"}
	if err := ExportPDF(path, metrics, est, opts); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	assertFileWritten(t, path)
}

func TestExportPDFEstimatedMetrics(t *testing.T) {
	// Estimated runs have no segment geometry; the report skips the
	// plan but still renders.
	metrics := model.RoofMetrics{
		TotalAreaSqFt: 1200,
		PerimeterFeet: 138,
		EavesFeet:     69,
		RakesFeet:     41,
		RidgesFeet:    28,
		IsEstimated:   true,
	}
	est := model.CalculateMaterials(metrics, 15)
	path := filepath.Join(t.TempDir(), "estimated.pdf")

	if err := ExportPDF(path, metrics, est, ReportOptions{}); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	assertFileWritten(t, path)
}
