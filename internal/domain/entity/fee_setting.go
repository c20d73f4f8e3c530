// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeeBoundsInverted is returned when a fee setting's minimum fee exceeds
// its maximum fee.
var ErrFeeBoundsInverted = errors.New("min fee must not exceed max fee")

// FeeScope identifies which level of the pricing hierarchy a FeeSetting
// applies to.
type FeeScope string

const (
	// FeeScopeGlobal applies to every restaurant without an override.
	FeeScopeGlobal FeeScope = "global"
	// FeeScopeRestaurant overrides the global setting for one restaurant.
	FeeScopeRestaurant FeeScope = "restaurant"
)

// String returns the string representation of the FeeScope.
func (s FeeScope) String() string {
	return string(s)
}

// IsValid checks if the FeeScope is a valid value.
func (s FeeScope) IsValid() bool {
	switch s {
	case FeeScopeGlobal, FeeScopeRestaurant:
		return true
	default:
		return false
	}
}

// FeeSetting is one row of delivery-fee configuration. Several settings may
// exist; resolution picks exactly one per calculation (restaurant override
// first, then global, then the built-in fallback).
type FeeSetting struct {
	ID                    uuid.UUID  `json:"id"`
	Scope                 FeeScope   `json:"scope"`
	RestaurantID          *uuid.UUID `json:"restaurant_id,omitempty"` // Set only for restaurant-scoped settings.
	BaseFee               float64    `json:"base_fee"`
	PerKmFee              float64    `json:"per_km_fee"`
	MinFee                float64    `json:"min_fee"`
	MaxFee                float64    `json:"max_fee"`
	FreeDeliveryThreshold float64    `json:"free_delivery_threshold"` // Subtotal at or above which delivery is free; 0 disables.
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// Validate checks the setting's internal invariants.
func (f *FeeSetting) Validate() error {
	if f.MinFee > f.MaxFee {
		return errors.Wrapf(ErrFeeBoundsInverted, "min %.2f > max %.2f", f.MinFee, f.MaxFee)
	}

	return nil
}

// FallbackFeeSetting is the built-in configuration used when neither a
// restaurant override nor a global setting is active.
func FallbackFeeSetting() *FeeSetting {
	return &FeeSetting{
		Scope:    FeeScopeGlobal,
		BaseFee:  0,
		PerKmFee: 0,
		MinFee:   0,
		MaxFee:   1000,
		IsActive: true,
	}
}
