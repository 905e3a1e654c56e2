// Package geo computes approximate surface areas of drawn field boundaries
// given as geodetic coordinate rings.
package geo

import "math"

// EarthRadiusM is the WGS84 semi-major axis in metres.
const EarthRadiusM = 6378137.0

// Point is a geodetic vertex in decimal degrees.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// RingArea returns the approximate surface area in square metres of the
// region bounded by ring, using the spherical-excess shoelace formula. The
// ring is implicitly closed: the last vertex connects back to the first.
//
// Fewer than 3 vertices is a degenerate input and returns 0, not an error.
// The result is independent of winding direction and of which vertex starts
// the ring. The approximation treats the Earth as a sphere; accuracy degrades
// for polygons spanning large latitude ranges, and rings crossing the
// antimeridian must use unwrapped longitudes (e.g. 179 and 181, not 179 and
// -179) or the result is wrong.
func RingArea(ring []Point) float64 {
	if len(ring) < 3 {
		return 0
	}

	area := 0.0
	for i := range ring {
		p1 := ring[i]
		p2 := ring[(i+1)%len(ring)]
		area += toRad(p2.Lon-p1.Lon) * (2 + math.Sin(toRad(p1.Lat)) + math.Sin(toRad(p2.Lat)))
	}
	return math.Abs(area * EarthRadiusM * EarthRadiusM / 2)
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
