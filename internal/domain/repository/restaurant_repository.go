// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// ErrRestaurantNotFound is returned when a restaurant is not found.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepository defines the interface for restaurant-related database operations.
// The fee and settlement core only reads restaurant records; CRUD lives in the
// admin application.
type RestaurantRepository interface {
	// FindRestaurantByID retrieves a restaurant by its unique ID.
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
}
