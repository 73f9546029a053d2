package model

// EdgeType classifies one edge of a roof segment rectangle.
type EdgeType string

const (
	EdgeEave   EdgeType = "eave"
	EdgeRake   EdgeType = "rake"
	EdgeRidge  EdgeType = "ridge"
	EdgeValley EdgeType = "valley"
	EdgeHip    EdgeType = "hip"
)

func (e EdgeType) String() string {
	return string(e)
}

// ClassifiedEdge is one bounding-box edge with its classification and
// measured geodesic length. Edges are produced per aggregation call and
// never persisted independently of their RoofMetrics.
type ClassifiedEdge struct {
	Type           EdgeType  `json:"type"`
	LengthFeet     float64   `json:"length_ft"`
	Coordinates    [2]LatLng `json:"coordinates"`
	AzimuthDegrees float64   `json:"azimuth_degrees"`
	PitchDegrees   float64   `json:"pitch_degrees"`
}

// RoofMetrics is the aggregated measurement result for one building.
// All numeric fields are non-negative. IsEstimated marks metrics that
// were derived from area-only fallback ratios rather than measured
// segment geometry; callers must not treat estimated values as
// survey-grade measurements.
type RoofMetrics struct {
	TotalAreaSqFt    float64          `json:"total_area_sqft"`
	PredominantPitch int              `json:"predominant_pitch"` // rise per 12
	PerimeterFeet    float64          `json:"perimeter_ft"`
	EavesFeet        float64          `json:"eaves_ft"`
	RakesFeet        float64          `json:"rakes_ft"`
	RidgesFeet       float64          `json:"ridges_ft"`
	ValleysFeet      float64          `json:"valleys_ft"`
	HipsFeet         float64          `json:"hips_ft"`
	Segments         []ClassifiedEdge `json:"segments,omitempty"`
	IsEstimated      bool             `json:"is_estimated"`
}

// PitchLabel returns the predominant pitch as a table label ("6/12").
func (m RoofMetrics) PitchLabel() string {
	return PitchRiseLabel(m.PredominantPitch)
}

// TotalEdgeFeet returns the summed length of all classified buckets.
func (m RoofMetrics) TotalEdgeFeet() float64 {
	return m.EavesFeet + m.RakesFeet + m.RidgesFeet + m.ValleysFeet + m.HipsFeet
}

// Squares returns the roof area in whole roofing squares.
func (m RoofMetrics) Squares() int {
	return SqFeetToSquares(m.TotalAreaSqFt)
}
