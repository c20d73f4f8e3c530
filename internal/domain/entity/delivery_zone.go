// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryZone is a distance band with a fixed fee and an estimated delivery
// time label. Bands are half-open intervals [MinDistanceKm, MaxDistanceKm).
// When bands overlap, lookup takes the first matching zone ordered by
// MinDistanceKm ascending.
type DeliveryZone struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	MinDistanceKm float64   `json:"min_distance_km"`
	MaxDistanceKm float64   `json:"max_distance_km"`
	Fee           float64   `json:"fee"`
	EstimatedTime string    `json:"estimated_time"` // Human-readable label, e.g. "30-45 min".
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Contains reports whether the given distance falls inside the zone band.
func (z *DeliveryZone) Contains(distanceKm float64) bool {
	return distanceKm >= z.MinDistanceKm && distanceKm < z.MaxDistanceKm
}
