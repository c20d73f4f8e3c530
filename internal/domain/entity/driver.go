// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Driver is the courier-side party of an order.
type Driver struct {
	ID             uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the driver.
	Name           string    `json:"name"`            // Display name.
	Phone          string    `json:"phone"`           // Contact phone number.
	CommissionRate float64   `json:"commission_rate"` // Percentage of the delivery fee paid out to the driver.
	IsActive       bool      `json:"is_active"`       // Indicates if the driver is currently available for dispatch.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
