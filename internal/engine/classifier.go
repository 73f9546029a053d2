// Package engine turns raw building-insight survey data into classified
// roof measurements. The survey supplies each roof segment as a
// bounding rectangle plus pitch and azimuth; the engine classifies the
// rectangle's edges against the segment azimuth and aggregates the
// lengths into the buckets a material takeoff needs.
package engine

import (
	"math"

	"github.com/summitcrm/RoofScope/internal/geo"
	"github.com/summitcrm/RoofScope/internal/model"
)

// FlatPitchDegrees is the slope below which a segment is treated as
// flat. Flat roofs have no meaningful rake/ridge distinction, so every
// edge becomes an eave.
const FlatPitchDegrees = 5.0

// Bearing-difference thresholds for edge classification, in degrees.
// The difference between an edge's bearing and the segment azimuth is
// normalized to [0, 360); an edge roughly parallel to the azimuth is a
// rake, roughly opposite is an eave, roughly perpendicular is a ridge.
// Everything between lands in the hip bucket.
const (
	rakeMaxDiff  = 30.0
	ridgeMinDiff = 60.0
	ridgeMaxDiff = 120.0
	eaveMinDiff  = 150.0
	eaveMaxDiff  = 210.0
	rakeWrapDiff = 330.0
)

// ClassifyBearingDiff maps a normalized bearing difference in [0, 360)
// to an edge type.
//
// Bounding-box data cannot tell a ridge from a valley: both sit
// perpendicular to the fall line, and telling them apart needs
// neighboring-segment context the survey does not provide. That band
// always resolves to ridge; valleys are never emitted here.
func ClassifyBearingDiff(diff float64) model.EdgeType {
	switch {
	case diff < rakeMaxDiff || diff > rakeWrapDiff:
		return model.EdgeRake
	case diff > eaveMinDiff && diff < eaveMaxDiff:
		return model.EdgeEave
	case diff > ridgeMinDiff && diff < ridgeMaxDiff:
		return model.EdgeRidge
	default:
		return model.EdgeHip
	}
}

// normalizeBearingDiff returns |bearing - azimuth| wrapped into [0, 360).
func normalizeBearingDiff(bearing, azimuth float64) float64 {
	diff := math.Mod(math.Abs(bearing-azimuth), 360)
	if diff < 0 {
		diff += 360
	}
	return diff
}

// ClassifySegment classifies the four bounding-box edges of one roof
// segment. Segments without a bounding box return nil; the caller
// treats them as partial data, not an error.
func ClassifySegment(seg model.RoofSegmentStat) []model.ClassifiedEdge {
	if seg.BoundingBox == nil {
		return nil
	}

	edges := geo.RectangleEdges(*seg.BoundingBox)
	classified := make([]model.ClassifiedEdge, 0, len(edges))

	for _, e := range edges {
		bearing := geo.BearingDegrees(e[0], e[1])
		length := geo.DistanceFeet(e[0], e[1])

		var edgeType model.EdgeType
		if seg.PitchDegrees < FlatPitchDegrees {
			edgeType = model.EdgeEave
		} else {
			edgeType = ClassifyBearingDiff(normalizeBearingDiff(bearing, seg.AzimuthDegrees))
		}

		classified = append(classified, model.ClassifiedEdge{
			Type:           edgeType,
			LengthFeet:     length,
			Coordinates:    [2]model.LatLng{e[0], e[1]},
			AzimuthDegrees: seg.AzimuthDegrees,
			PitchDegrees:   seg.PitchDegrees,
		})
	}

	return classified
}
