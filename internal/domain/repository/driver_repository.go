// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// ErrDriverNotFound is returned when a driver is not found.
var ErrDriverNotFound = errors.New("driver not found")

// DriverRepository defines the interface for driver-related database operations.
type DriverRepository interface {
	// FindDriverByID retrieves a driver by its unique ID.
	FindDriverByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error)
}
