package model

// LatLng is a WGS84 coordinate pair as delivered by the aerial survey
// provider.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BoundingBox is the axis-aligned rectangle enclosing one roof segment.
// The upstream API supplies only this rectangle, not the true segment
// outline.
type BoundingBox struct {
	SW LatLng `json:"sw"`
	NE LatLng `json:"ne"`
}

// SegmentStats holds the per-segment area figures from the survey.
type SegmentStats struct {
	AreaMeters2       float64 `json:"areaMeters2"`
	GroundAreaMeters2 float64 `json:"groundAreaMeters2,omitempty"`
}

// RoofSegmentStat describes one planar roof section of uniform pitch
// and azimuth. BoundingBox may be nil when the provider could not
// resolve the segment geometry; such segments carry area and pitch but
// no classifiable edges.
type RoofSegmentStat struct {
	PitchDegrees   float64      `json:"pitchDegrees"`
	AzimuthDegrees float64      `json:"azimuthDegrees"`
	BoundingBox    *BoundingBox `json:"boundingBox,omitempty"`
	Stats          SegmentStats `json:"stats"`
	Center         *LatLng      `json:"center,omitempty"`
}

// SolarPotential is the survey sub-document carrying roof segment data.
type SolarPotential struct {
	MaxArrayAreaMeters2 float64           `json:"maxArrayAreaMeters2,omitempty"`
	RoofSegmentStats    []RoofSegmentStat `json:"roofSegmentStats,omitempty"`
}

// BuildingInsight is the raw survey payload for one building. Every
// field is optional; consumers must tolerate sparse data. TotalAreaSqFt
// is a CRM-side figure already in square feet, used as a fallback when
// no segment data exists.
type BuildingInsight struct {
	SolarPotential *SolarPotential `json:"solarPotential,omitempty"`
	TotalAreaSqFt  float64         `json:"totalArea,omitempty"`
}

// Segments returns the roof segment list, or nil when the survey has
// no solar potential block.
func (b BuildingInsight) Segments() []RoofSegmentStat {
	if b.SolarPotential == nil {
		return nil
	}
	return b.SolarPotential.RoofSegmentStats
}

// FallbackAreaSqFt returns the best available whole-roof area in square
// feet when no per-segment data exists: the CRM-supplied total area if
// set, otherwise the survey's maximum array area converted from square
// meters. Returns 0 when neither is present.
func (b BuildingInsight) FallbackAreaSqFt() float64 {
	if b.TotalAreaSqFt > 0 {
		return b.TotalAreaSqFt
	}
	if b.SolarPotential != nil && b.SolarPotential.MaxArrayAreaMeters2 > 0 {
		return SqMetersToSqFeet(b.SolarPotential.MaxArrayAreaMeters2)
	}
	return 0
}
