// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for withdrawal persistence.
var (
	// ErrWithdrawalNotFound is returned when a withdrawal request is not found.
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	// ErrWithdrawalStatusConflict is returned when a status transition update
	// matches no row because the request left the expected state.
	ErrWithdrawalStatusConflict = errors.New("withdrawal request status conflict")
)

// WithdrawalRepository defines the interface for withdrawal-request persistence.
//
// Status transitions are expressed as conditional updates guarded by the
// current status, so two admins acting on the same request cannot both win.
type WithdrawalRepository interface {
	// CreateWithdrawal persists a new pending withdrawal request.
	CreateWithdrawal(ctx context.Context, request *entity.WithdrawalRequest) error

	// FindWithdrawalByID retrieves a withdrawal request by its unique ID.
	FindWithdrawalByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error)

	// FindWithdrawalsByOwner retrieves all requests filed by an owner, newest first.
	FindWithdrawalsByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.WithdrawalRequest, error)

	// FindWithdrawalsByStatus retrieves all requests in the given status, oldest first.
	FindWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.WithdrawalRequest, error)

	// MarkApproved transitions a pending request to approved. Returns
	// ErrWithdrawalStatusConflict when the request is no longer pending.
	MarkApproved(ctx context.Context, id uuid.UUID, approvedBy string, approvedAt time.Time) error

	// MarkRejected transitions a pending request to rejected with a reason.
	// Returns ErrWithdrawalStatusConflict when the request is no longer pending.
	MarkRejected(ctx context.Context, id uuid.UUID, reason string) error

	// MarkCompleted transitions an approved request to completed. Returns
	// ErrWithdrawalStatusConflict when the request is not approved.
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error
}
