// Package geo holds the coordinate helpers for nearby-job lookups.
package geo

import "math"

const earthRadiusKm = 6371.0

// BoxDelta is the half-width, in degrees, of the window used to find
// nearby jobs. The window is the contract: the caller-supplied radius
// does not change it.
const BoxDelta = 0.1

type Point struct {
	Lat float64
	Lng float64
}

// Distance returns the great-circle distance between two points in
// kilometers (haversine).
func Distance(p1, p2 Point) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	dLat := (p2.Lat - p1.Lat) * math.Pi / 180
	dLng := (p2.Lng - p1.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}
