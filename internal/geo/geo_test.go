package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_ZeroForSamePoint(t *testing.T) {
	p := Coordinate{Latitude: 23.8103, Longitude: 90.4125}

	assert.Zero(t, Distance(p, p))
}

func TestDistance_KnownSeparation(t *testing.T) {
	// Dhaka to Chattogram is roughly 215 km in a straight line.
	dhaka := Coordinate{Latitude: 23.8103, Longitude: 90.4125}
	chattogram := Coordinate{Latitude: 22.3569, Longitude: 91.7832}

	d := Distance(dhaka, chattogram)

	assert.InDelta(t, 215_000, d, 10_000)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: 10, Longitude: 20}
	b := Coordinate{Latitude: -30, Longitude: 140}

	assert.Equal(t, Distance(a, b), Distance(b, a))
}

func TestDistance_MonotonicWithSeparation(t *testing.T) {
	origin := Coordinate{Latitude: 0, Longitude: 0}
	near := Coordinate{Latitude: 0, Longitude: 0.1}
	far := Coordinate{Latitude: 0, Longitude: 0.5}

	assert.Less(t, Distance(origin, near), Distance(origin, far))
}
