// Package service defines interfaces for domain services backed by infrastructure.
package service

import "sofra/internal/domain/entity"

// DistanceCalculator computes the distance between two coordinates.
// Implementations are pure and safe for unlimited concurrency.
type DistanceCalculator interface {
	// DistanceKm returns the great-circle distance between a and b in
	// kilometers. The result is symmetric and DistanceKm(a, a) == 0.
	DistanceKm(a, b entity.Coordinate) float64
}
