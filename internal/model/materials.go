package model

import "math"

// WastePresets are the waste factors commonly quoted for roofing jobs:
// 5% simple gable, 10% typical, 15% cut-up roof, 20% complex hip with
// many penetrations. The estimator accepts any non-negative percentage;
// these are UI suggestions, not a closed set.
var WastePresets = []float64{5, 10, 15, 20}

// BundlesPerSquare is the standard three-tab / architectural shingle
// packaging: three bundles cover one roofing square.
const BundlesPerSquare = 3

// ApplyWaste returns the material quantity after adding the waste
// percentage, rounded up to a whole unit. Waste is applied before any
// unit rounding so quantities are never rounded twice.
func ApplyWaste(raw, wastePercent float64) float64 {
	return math.Ceil(raw * (1.0 + wastePercent/100.0))
}

// WasteBreakdown shows how a raw quantity grows under a waste factor.
type WasteBreakdown struct {
	Raw         float64 `json:"raw"`
	WithWaste   float64 `json:"with_waste"`
	WasteAmount float64 `json:"waste_amount"`
}

// WithWaste returns the full raw/with-waste/delta breakdown for one
// quantity. WithWaste >= Raw for any wastePercent >= 0, with equality
// only at zero waste on whole-unit quantities.
func WithWaste(raw, wastePercent float64) WasteBreakdown {
	withWaste := ApplyWaste(raw, wastePercent)
	return WasteBreakdown{
		Raw:         raw,
		WithWaste:   withWaste,
		WasteAmount: withWaste - raw,
	}
}

// ShingleSquares returns the number of roofing squares of shingles to
// order for the given surface area and waste factor. The waste factor
// is applied to the raw area first; the single ceiling happens at the
// square boundary.
func ShingleSquares(areaSqFt, wastePercent float64) int {
	return int(math.Ceil(areaSqFt * (1.0 + wastePercent/100.0) / SqFeetPerSquare))
}

// ShingleBundles returns the shingle order size in bundles.
func ShingleBundles(areaSqFt, wastePercent float64) int {
	return ShingleSquares(areaSqFt, wastePercent) * BundlesPerSquare
}

// MaterialRequirement is one line of a material takeoff: a raw quantity
// derived from the roof measurements and the ordering quantity after
// waste.
type MaterialRequirement struct {
	Name      string  `json:"name"`
	Source    string  `json:"source"` // which measurements the raw quantity came from
	Raw       float64 `json:"raw"`
	WithWaste float64 `json:"with_waste"`
	Unit      string  `json:"unit"`
	Squares   int     `json:"squares,omitempty"`
	Bundles   int     `json:"bundles,omitempty"`
}

// MaterialEstimate is the full takeoff for one roof at one waste
// factor.
type MaterialEstimate struct {
	WastePercent   float64               `json:"waste_percent"`
	Items          []MaterialRequirement `json:"items"`
	ShingleSquares int                   `json:"shingle_squares"`
	ShingleBundles int                   `json:"shingle_bundles"`
}

// Measurement units used on takeoff lines.
const (
	UnitLinearFeet = "linear ft"
	UnitSquareFeet = "sq ft"
)

// CalculateMaterials turns aggregated roof metrics into a material
// takeoff at the given waste percentage. Valleys are zero under the
// current bounding-box classification heuristic, so the valley metal
// line will read zero until segment-adjacency data exists; the line is
// still emitted so takeoff layouts stay stable.
func CalculateMaterials(m RoofMetrics, wastePercent float64) MaterialEstimate {
	squares := ShingleSquares(m.TotalAreaSqFt, wastePercent)
	bundles := squares * BundlesPerSquare

	linear := func(name, source string, raw float64) MaterialRequirement {
		return MaterialRequirement{
			Name:      name,
			Source:    source,
			Raw:       raw,
			WithWaste: ApplyWaste(raw, wastePercent),
			Unit:      UnitLinearFeet,
		}
	}

	items := []MaterialRequirement{
		linear("Starter strip", "eaves", m.EavesFeet),
		linear("Drip edge", "eaves + rakes", m.EavesFeet+m.RakesFeet),
		linear("Hip & ridge cap", "ridges + hips", m.RidgesFeet+m.HipsFeet),
		linear("Valley metal", "valleys", m.ValleysFeet),
		// Valleys are double-covered: shield runs up both sides.
		linear("Ice & water shield", "2 x valleys + eaves", 2*m.ValleysFeet+m.EavesFeet),
		{
			Name:      "Shingles",
			Source:    "total area",
			Raw:       m.TotalAreaSqFt,
			WithWaste: ApplyWaste(m.TotalAreaSqFt, wastePercent),
			Unit:      UnitSquareFeet,
			Squares:   squares,
			Bundles:   bundles,
		},
	}

	return MaterialEstimate{
		WastePercent:   wastePercent,
		Items:          items,
		ShingleSquares: squares,
		ShingleBundles: bundles,
	}
}

// CompareWastePresets runs the material takeoff at each preset so a
// caller can show how the order size moves with the waste factor.
func CompareWastePresets(m RoofMetrics, presets []float64) []MaterialEstimate {
	if len(presets) == 0 {
		presets = WastePresets
	}
	estimates := make([]MaterialEstimate, 0, len(presets))
	for _, p := range presets {
		estimates = append(estimates, CalculateMaterials(m, p))
	}
	return estimates
}
