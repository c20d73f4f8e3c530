// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// ErrFeeSettingNotFound is returned when no active fee setting exists for the
// requested scope.
var ErrFeeSettingNotFound = errors.New("fee setting not found")

// FeeSettingRepository defines the interface for fee-setting lookups.
//
// When multiple rows are active for the same scope, implementations must pick
// the most recently updated one so that resolution stays deterministic.
type FeeSettingRepository interface {
	// FindActiveRestaurantSetting retrieves the active restaurant-scoped
	// override for the given restaurant.
	FindActiveRestaurantSetting(ctx context.Context, restaurantID uuid.UUID) (*entity.FeeSetting, error)

	// FindActiveGlobalSetting retrieves the active global default setting.
	FindActiveGlobalSetting(ctx context.Context) (*entity.FeeSetting, error)
}

// DeliveryZoneRepository defines the interface for delivery-zone lookups.
type DeliveryZoneRepository interface {
	// FindActiveZones retrieves all active zones ordered by min distance
	// ascending. Band selection happens in the domain, so overlap resolution
	// (first match wins) lives next to the zone entity.
	FindActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error)
}
