// Package geo provides the great-circle distance used to rank supply by
// proximity to a point of need.
package geo

import (
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the haversine great-circle distance between a and b in
// meters, on a spherical-earth approximation. It is used only for ranking, so
// monotonic correctness matters more than absolute accuracy.
func Distance(a, b Coordinate) float64 {
	return orbgeo.DistanceHaversine(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}
