// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order and settlement persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrSettlementNotFound is returned when no settlement exists for an order.
	ErrSettlementNotFound = errors.New("settlement not found")
	// ErrDuplicateSettlement is returned when a settlement already exists for
	// the order. The order reference carries a unique constraint, which makes
	// it the settlement idempotency key.
	ErrDuplicateSettlement = errors.New("settlement already exists for order")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

// SettlementRepository defines the interface for settlement persistence.
type SettlementRepository interface {
	// CreateSettlement persists a new settlement. Returns
	// ErrDuplicateSettlement when the order has already been settled. The
	// duplicate must be detected without failing the insert statement, so
	// that follow-up reads in the same transaction remain valid.
	CreateSettlement(ctx context.Context, settlement *entity.Settlement) error

	// FindSettlementByOrder retrieves the settlement for an order.
	FindSettlementByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Settlement, error)
}
