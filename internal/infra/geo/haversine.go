// Package geo provides the haversine implementation of the domain's
// DistanceCalculator on a spherical Earth approximation.
package geo

import (
	"math"

	"sofra/internal/domain/entity"
	"sofra/internal/domain/service"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

type haversineCalculator struct{}

// NewHaversineCalculator creates the haversine-based DistanceCalculator.
func NewHaversineCalculator() service.DistanceCalculator {
	return haversineCalculator{}
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
func (haversineCalculator) DistanceKm(a, b entity.Coordinate) float64 {
	return haversineDistanceKm(a.Point(), b.Point())
}

// haversineDistanceKm calculates the distance between two points in kilometers.
func haversineDistanceKm(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
