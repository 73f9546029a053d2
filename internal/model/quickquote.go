package model

import "math"

// RoofStyle selects the template geometry for a quick quote.
type RoofStyle string

const (
	StyleGable RoofStyle = "gable"
	StyleHip   RoofStyle = "hip"
)

// RoofTemplate produces estimated roof metrics from footprint
// dimensions alone, for quoting jobs before survey data is available.
// Length runs along the ridge; Width is the span the slopes cover.
type RoofTemplate struct {
	Name       string    `json:"name"`
	Style      RoofStyle `json:"style"`
	LengthFeet float64   `json:"length_ft"`
	WidthFeet  float64   `json:"width_ft"`
	Pitch      string    `json:"pitch"` // pitch label, e.g. "6/12"
}

// BuiltinTemplates cover the footprints sales reps quote most often.
var BuiltinTemplates = []RoofTemplate{
	{Name: "Ranch gable 40x30", Style: StyleGable, LengthFeet: 40, WidthFeet: 30, Pitch: "4/12"},
	{Name: "Two-story gable 48x28", Style: StyleGable, LengthFeet: 48, WidthFeet: 28, Pitch: "6/12"},
	{Name: "Hip ranch 50x30", Style: StyleHip, LengthFeet: 50, WidthFeet: 30, Pitch: "5/12"},
	{Name: "Steep gable 36x26", Style: StyleGable, LengthFeet: 36, WidthFeet: 26, Pitch: "9/12"},
}

// GetTemplate returns a builtin template by name.
func GetTemplate(name string) (RoofTemplate, bool) {
	for _, t := range BuiltinTemplates {
		if t.Name == name {
			return t, true
		}
	}
	return RoofTemplate{}, false
}

// Metrics derives estimated roof metrics from the template geometry.
// The result is always flagged IsEstimated: template numbers are quote
// aids, not measurements.
//
// Gable: two eaves along the length, four rakes up the gable ends, one
// full-length ridge. Hip: eaves wrap the whole perimeter, four hip
// rafters run from the corners, and the ridge shortens to length minus
// width.
func (t RoofTemplate) Metrics() RoofMetrics {
	slope := PitchMultiplier(t.Pitch)
	rise := float64(PitchRiseFromLabel(t.Pitch))
	perimeter := 2 * (t.LengthFeet + t.WidthFeet)
	area := t.LengthFeet * t.WidthFeet * slope

	m := RoofMetrics{
		TotalAreaSqFt:    area,
		PredominantPitch: PitchRiseFromLabel(t.Pitch),
		PerimeterFeet:    perimeter,
		IsEstimated:      true,
	}

	switch t.Style {
	case StyleHip:
		m.EavesFeet = perimeter
		m.RidgesFeet = math.Max(t.LengthFeet-t.WidthFeet, 0)
		// Hip rafter: half-width run in both plan directions plus the
		// vertical rise over that run.
		halfW := t.WidthFeet / 2
		m.HipsFeet = 4 * halfW * math.Sqrt(2+math.Pow(rise/12, 2))
	default: // gable
		m.EavesFeet = 2 * t.LengthFeet
		m.RakesFeet = 2 * t.WidthFeet * slope
		m.RidgesFeet = t.LengthFeet
	}

	return m
}
