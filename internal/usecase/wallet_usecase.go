package usecase

import (
	"context"

	"sofra/internal/domain/entity"

	"github.com/google/uuid"
)

// WalletUsecase defines the wallet read and manual-credit use cases.
type WalletUsecase interface {
	// GetWallet retrieves an owner's wallet, creating an empty one on first use.
	GetWallet(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error)

	// AddBalance credits an owner's wallet manually (admin top-up) and records
	// a ledger entry with the given description.
	AddBalance(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID, amount float64, description string) (*entity.Wallet, error)

	// GetLedger retrieves the most recent ledger entries for an owner's wallet.
	GetLedger(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID, limit int) ([]*entity.LedgerEntry, error)
}
