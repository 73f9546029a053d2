package model

import "math"

// Conversion factors between the metric units used by aerial survey
// providers and the imperial units used throughout the roofing trade.
const (
	SqFeetPerSqMeter = 10.764
	FeetPerMeter     = 3.28084
	// SqFeetPerSquare is one roofing square: 100 sq ft of roof surface.
	SqFeetPerSquare = 100.0
)

// DefaultPitchLabel is the pitch assumed when a label is unknown.
// A 6/12 pitch is the most common residential slope, so falling back
// to it gives a usable (if approximate) surface multiplier instead of
// failing the whole estimate.
const DefaultPitchLabel = "6/12"

// pitchMultipliers maps a pitch label to the surface-area multiplier
// sqrt(1 + (rise/12)^2), precomputed to three decimals the way roofing
// slope-factor tables publish them. Never mutated at runtime.
var pitchMultipliers = map[string]float64{
	"flat":  1.000,
	"1/12":  1.003,
	"2/12":  1.014,
	"3/12":  1.031,
	"4/12":  1.054,
	"5/12":  1.083,
	"6/12":  1.118,
	"7/12":  1.158,
	"8/12":  1.202,
	"9/12":  1.250,
	"10/12": 1.302,
	"11/12": 1.357,
	"12/12": 1.414,
}

// SqMetersToSqFeet converts square meters to square feet.
func SqMetersToSqFeet(m2 float64) float64 {
	return m2 * SqFeetPerSqMeter
}

// MetersToFeet converts meters to feet.
func MetersToFeet(m float64) float64 {
	return m * FeetPerMeter
}

// SqFeetToSquares converts roof surface area to whole roofing squares,
// rounding up since partial squares are still purchased whole.
func SqFeetToSquares(sqft float64) int {
	return int(math.Ceil(sqft / SqFeetPerSquare))
}

// PitchMultiplier returns the surface-area multiplier for a pitch label
// such as "6/12" or "flat". Unknown labels fall back to
// DefaultPitchLabel rather than erroring.
func PitchMultiplier(label string) float64 {
	if m, ok := pitchMultipliers[label]; ok {
		return m
	}
	return pitchMultipliers[DefaultPitchLabel]
}

// DegreesToPitchRise converts a slope angle in degrees to the nearest
// whole rise-per-12 pitch value.
func DegreesToPitchRise(degrees float64) int {
	return int(math.Round(math.Tan(degrees*math.Pi/180) * 12))
}

// PitchRiseLabel converts a rise-per-12 value to its table label.
// Rises are clamped to the 0..12 range the multiplier table covers;
// zero maps to "flat".
func PitchRiseLabel(rise int) string {
	if rise <= 0 {
		return "flat"
	}
	if rise > 12 {
		rise = 12
	}
	return riseLabels[rise]
}

var riseLabels = [13]string{
	"flat", "1/12", "2/12", "3/12", "4/12", "5/12", "6/12",
	"7/12", "8/12", "9/12", "10/12", "11/12", "12/12",
}

// PitchRiseFromLabel parses a pitch label back to its rise value.
// "flat" is 0; unknown labels fall back to the default pitch.
func PitchRiseFromLabel(label string) int {
	for rise, l := range riseLabels {
		if l == label {
			return rise
		}
	}
	return PitchRiseFromLabel(DefaultPitchLabel)
}

// RoofSurfaceArea converts a flat footprint area to sloped roof surface
// area using the pitch multiplier table.
func RoofSurfaceArea(footprintSqFt float64, pitchLabel string) float64 {
	return footprintSqFt * PitchMultiplier(pitchLabel)
}
