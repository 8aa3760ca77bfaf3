// Package geo implements the pure coordinate geometry behind geospatial
// search: great-circle distance and bounding-box construction. No I/O.
package geo

import "math"

// earthRadiusM is the spherical earth radius used for haversine distance.
const earthRadiusM = 6_371_000.0

// metersPerDegreeLat approximates one degree of latitude.
const metersPerDegreeLat = 111_000.0

// minCosLat clamps the longitude scaling factor so the degree length never
// collapses near the poles.
const minCosLat = 0.1

// BBox is an axis-aligned rectangle in latitude/longitude space.
// Longitude wraparound at the ±180° seam is not handled.
type BBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether the point lies inside the box, borders included.
func (b BBox) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lon >= b.LonMin && lon <= b.LonMax
}

// DistanceMeters returns the great-circle distance between two points using
// the haversine formula. Symmetric in its arguments and zero for identical
// points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := radians(lat1)
	phi2 := radians(lat2)
	dPhi := radians(lat2 - lat1)
	dLambda := radians(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * earthRadiusM * math.Asin(math.Sqrt(a))
}

// BBoxForRadius builds the axis-aligned box that fully contains the circle of
// radiusM meters around (lat, lon). The box is a superset of the circle:
// callers must still apply an exact DistanceMeters filter. radiusM > 0 is the
// caller's precondition.
func BBoxForRadius(lat, lon, radiusM float64) BBox {
	latDelta := radiusM / metersPerDegreeLat
	lonDelta := radiusM / (metersPerDegreeLat * math.Max(minCosLat, math.Cos(radians(lat))))
	return BBox{
		LatMin: lat - latDelta,
		LatMax: lat + latDelta,
		LonMin: lon - lonDelta,
		LonMax: lon + lonDelta,
	}
}

// BBoxForRectangle normalizes two arbitrary corner points into a min/max box.
// Corner order is irrelevant.
func BBoxForRectangle(lat1, lon1, lat2, lon2 float64) BBox {
	return BBox{
		LatMin: math.Min(lat1, lat2),
		LatMax: math.Max(lat1, lat2),
		LonMin: math.Min(lon1, lon2),
		LonMax: math.Max(lon1, lon2),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
