package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/summitcrm/RoofScope/internal/model"
)

func TestExportDXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roof.dxf")

	if err := ExportDXF(path, exportTestMetrics()); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	assertFileWritten(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	for _, layer := range []string{"EAVE", "RAKE", "RIDGE"} {
		if !strings.Contains(content, layer) {
			t.Errorf("drawing is missing layer %s", layer)
		}
	}
	if !strings.Contains(content, "LINE") {
		t.Error("drawing has no line entities")
	}
}

func TestExportDXFNoSegments(t *testing.T) {
	metrics := model.RoofMetrics{TotalAreaSqFt: 1000, IsEstimated: true}
	path := filepath.Join(t.TempDir(), "roof.dxf")

	if err := ExportDXF(path, metrics); err == nil {
		t.Error("expected an error for metrics without segment geometry")
	}
}
