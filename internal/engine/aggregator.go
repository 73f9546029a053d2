package engine

import (
	"math"

	"github.com/summitcrm/RoofScope/internal/model"
)

// Fixed ratios used when no segment geometry exists and linear
// measurements must be estimated from area alone. The estimated
// perimeter is 4*sqrt(area) (a square footprint); the splits reflect a
// typical gable roof, and they sum to the full perimeter.
const (
	estimatedEaveRatio  = 0.5
	estimatedRakeRatio  = 0.3
	estimatedRidgeRatio = 0.2
)

// CalculateRoofMetrics aggregates a building-insight payload into
// classified roof measurements. It never fails: missing or partial
// survey data degrades to estimated or zero metrics, with IsEstimated
// flagging anything not derived from measured segment geometry.
func CalculateRoofMetrics(insight model.BuildingInsight) model.RoofMetrics {
	segments := insight.Segments()

	var m model.RoofMetrics
	var pitchSum float64
	classifiedSegments := 0

	for _, seg := range segments {
		edges := ClassifySegment(seg)
		if edges == nil {
			// No bounding box: nothing measurable on this segment.
			continue
		}
		classifiedSegments++

		for _, e := range edges {
			switch e.Type {
			case model.EdgeEave:
				m.EavesFeet += e.LengthFeet
			case model.EdgeRake:
				m.RakesFeet += e.LengthFeet
			case model.EdgeRidge:
				m.RidgesFeet += e.LengthFeet
			case model.EdgeValley:
				m.ValleysFeet += e.LengthFeet
			case model.EdgeHip:
				m.HipsFeet += e.LengthFeet
			}
			m.PerimeterFeet += e.LengthFeet
		}

		m.Segments = append(m.Segments, edges...)
		m.TotalAreaSqFt += model.SqMetersToSqFeet(seg.Stats.AreaMeters2)
	}

	if classifiedSegments > 0 {
		// Unweighted average across all segments, not area-weighted.
		// Segments skipped for missing geometry still report a pitch
		// and still count.
		for _, seg := range segments {
			pitchSum += seg.PitchDegrees
		}
		meanPitch := pitchSum / float64(len(segments))
		m.PredominantPitch = model.DegreesToPitchRise(meanPitch)
		return m
	}

	return estimatedMetrics(insight.FallbackAreaSqFt())
}

// estimatedMetrics derives area-only fallback metrics. With no area at
// all the result is all zeros; either way IsEstimated is set so callers
// can tell approximation from measurement.
func estimatedMetrics(areaSqFt float64) model.RoofMetrics {
	m := model.RoofMetrics{IsEstimated: true}
	if areaSqFt <= 0 {
		return m
	}

	perimeter := 4 * math.Sqrt(areaSqFt)
	m.TotalAreaSqFt = areaSqFt
	m.PerimeterFeet = perimeter
	m.EavesFeet = estimatedEaveRatio * perimeter
	m.RakesFeet = estimatedRakeRatio * perimeter
	m.RidgesFeet = estimatedRidgeRatio * perimeter
	return m
}
