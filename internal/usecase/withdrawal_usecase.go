package usecase

import (
	"context"

	"sofra/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateWithdrawalInput carries a new withdrawal request.
type CreateWithdrawalInput struct {
	OwnerType     entity.OwnerType
	OwnerID       uuid.UUID
	Amount        float64
	AccountNumber string
	BankName      string
	AccountHolder string
	RequestedBy   string
}

// WithdrawalUsecase defines the withdrawal-request workflow use cases.
type WithdrawalUsecase interface {
	// CreateWithdrawal files a new pending request. The wallet balance is
	// checked (not reserved) at request time; an insufficient balance fails
	// the request and no row is created.
	CreateWithdrawal(ctx context.Context, input *CreateWithdrawalInput) (*entity.WithdrawalRequest, error)

	// ApproveWithdrawal approves a pending request and debits the wallet. The
	// balance is re-checked atomically at approval time.
	ApproveWithdrawal(ctx context.Context, id uuid.UUID, approvedBy string) (*entity.WithdrawalRequest, error)

	// RejectWithdrawal rejects a pending request with a reason. No balance change.
	RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string) (*entity.WithdrawalRequest, error)

	// CompleteWithdrawal marks an approved request as paid out.
	CompleteWithdrawal(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error)

	// GetWithdrawal retrieves a single request.
	GetWithdrawal(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error)

	// ListWithdrawalsByOwner retrieves the requests filed by an owner, newest first.
	ListWithdrawalsByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.WithdrawalRequest, error)

	// ListWithdrawalsByStatus retrieves requests in a status, oldest first.
	ListWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.WithdrawalRequest, error)
}
