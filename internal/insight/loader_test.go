package insight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validPayload = `{
	"solarPotential": {
		"maxArrayAreaMeters2": 92.9,
		"roofSegmentStats": [
			{
				"pitchDegrees": 26.6,
				"azimuthDegrees": 180,
				"boundingBox": {
					"sw": {"latitude": 40.0, "longitude": -105.0},
					"ne": {"latitude": 40.0002, "longitude": -104.9997}
				},
				"stats": {"areaMeters2": 92.9}
			}
		]
	}
}`

func TestParseValidPayload(t *testing.T) {
	result := Parse([]byte(validPayload))
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	segments := result.Insight.Segments()
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].PitchDegrees != 26.6 {
		t.Errorf("pitch = %v, want 26.6", segments[0].PitchDegrees)
	}
	if segments[0].BoundingBox == nil {
		t.Fatal("bounding box should be populated")
	}
	if segments[0].BoundingBox.SW.Latitude != 40.0 {
		t.Errorf("sw latitude = %v, want 40.0", segments[0].BoundingBox.SW.Latitude)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	result := Parse([]byte("{not json"))
	if result.OK() {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(result.Errors[0], "cannot parse") {
		t.Errorf("unexpected error text: %q", result.Errors[0])
	}
}

func TestParseNoSegmentsWithArea(t *testing.T) {
	result := Parse([]byte(`{"totalArea": 1500}`))
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "estimated from total area") {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestParseNoSegmentsNoArea(t *testing.T) {
	result := Parse([]byte(`{}`))
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "all measurements will be zero") {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestParseSegmentGapsWarn(t *testing.T) {
	payload := `{
		"solarPotential": {
			"roofSegmentStats": [
				{"pitchDegrees": 20, "azimuthDegrees": 90, "stats": {"areaMeters2": 0}}
			]
		}
	}`
	result := Parse([]byte(payload))
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", result.Warnings)
	}
	if !strings.Contains(result.Warnings[0], "no bounding box") {
		t.Errorf("warning 0 = %q", result.Warnings[0])
	}
	if !strings.Contains(result.Warnings[1], "non-positive area") {
		t.Errorf("warning 1 = %q", result.Warnings[1])
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insight.json")
	if err := os.WriteFile(path, []byte(validPayload), 0644); err != nil {
		t.Fatal(err)
	}

	result := LoadFile(path)
	if !result.OK() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Insight.Segments()) != 1 {
		t.Errorf("expected 1 segment, got %d", len(result.Insight.Segments()))
	}
}

func TestLoadFileMissing(t *testing.T) {
	result := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if result.OK() {
		t.Fatal("expected an error for a missing file")
	}
	if !strings.Contains(result.Errors[0], "cannot read") {
		t.Errorf("unexpected error text: %q", result.Errors[0])
	}
}
