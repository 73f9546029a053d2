// Package geo provides the small set of geodesic helpers the
// measurement engine needs: great-circle distance, initial bearing, and
// bounding-box expansion. Inputs are WGS84 lat/lon; linear outputs are
// feet.
package geo

import (
	"math"

	"github.com/summitcrm/RoofScope/internal/model"
)

// earthRadiusMeters is the mean Earth radius. Roof-scale distances are
// far below the error introduced by ignoring the ellipsoid.
const earthRadiusMeters = 6371000.0

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// DistanceFeet returns the great-circle (haversine) distance between
// two coordinates in feet.
func DistanceFeet(a, b model.LatLng) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	d := 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return model.MetersToFeet(d)
}

// BearingDegrees returns the initial great-circle bearing from a to b,
// normalized to [0, 360). 0 is north, 90 east.
func BearingDegrees(a, b model.LatLng) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	return math.Mod(toDegrees(math.Atan2(y, x))+360, 360)
}

// RectangleCorners expands a bounding box to its four corners in
// counter-clockwise order: SW, SE, NE, NW.
func RectangleCorners(box model.BoundingBox) [4]model.LatLng {
	return [4]model.LatLng{
		box.SW,
		{Latitude: box.SW.Latitude, Longitude: box.NE.Longitude},
		box.NE,
		{Latitude: box.NE.Latitude, Longitude: box.SW.Longitude},
	}
}

// RectangleEdges returns the four edges of a bounding box as corner
// pairs, in the same order RectangleCorners walks them.
func RectangleEdges(box model.BoundingBox) [4][2]model.LatLng {
	c := RectangleCorners(box)
	return [4][2]model.LatLng{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// RectanglePerimeterFeet returns the geodesic perimeter of a bounding
// box in feet.
func RectanglePerimeterFeet(box model.BoundingBox) float64 {
	var total float64
	for _, edge := range RectangleEdges(box) {
		total += DistanceFeet(edge[0], edge[1])
	}
	return total
}

// LocalXY projects a coordinate into a flat local frame centred on
// origin, returning feet east (x) and feet north (y). An equirectangular
// projection is plenty at roof scale.
func LocalXY(origin, p model.LatLng) (x, y float64) {
	latRad := toRadians(origin.Latitude)
	metersPerDegLat := earthRadiusMeters * math.Pi / 180
	metersPerDegLng := metersPerDegLat * math.Cos(latRad)

	x = model.MetersToFeet((p.Longitude - origin.Longitude) * metersPerDegLng)
	y = model.MetersToFeet((p.Latitude - origin.Latitude) * metersPerDegLat)
	return x, y
}
