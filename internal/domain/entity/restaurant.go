// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is the marketplace-side party of an order. Only the fields the
// fee and settlement core needs are modeled here; the rest of the restaurant
// record (menu, admin contacts) lives outside this service.
type Restaurant struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the restaurant.
	Name           string    `json:"name"`            // Display name.
	Latitude       float64   `json:"latitude"`        // The geographic latitude of the restaurant.
	Longitude      float64   `json:"longitude"`       // The geographic longitude of the restaurant.
	CommissionRate float64   `json:"commission_rate"` // Percentage of the order subtotal retained by the platform.
	IsActive       bool      `json:"is_active"`       // Indicates if the restaurant is currently accepting orders.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location returns the restaurant coordinate as a value type.
func (r *Restaurant) Location() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// HasLocation reports whether the restaurant record carries a usable coordinate.
// A zero/zero pair is treated as unset, matching how incomplete records are stored.
func (r *Restaurant) HasLocation() bool {
	return r.Latitude != 0 || r.Longitude != 0
}
