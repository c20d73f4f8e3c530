// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for wallet persistence.
var (
	// ErrWalletNotFound is returned when a wallet is not found.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrInsufficientBalance is returned when a conditional debit finds less
	// balance than the requested amount.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)

// WalletRepository defines the interface for wallet-related database operations.
//
// Balance mutations are expressed as atomic relative updates; implementations
// must never read a balance and write it back, so that concurrent settlements
// and withdrawals cannot race past each other.
type WalletRepository interface {
	// GetOrCreateWallet retrieves the wallet for an owner, creating an empty
	// active wallet on first use.
	GetOrCreateWallet(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error)

	// FindWalletByOwner retrieves the wallet for an owner without creating it.
	FindWalletByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error)

	// CreditWallet atomically increases the balance and lifetime earnings of a
	// wallet by amount (amount > 0).
	CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error

	// DebitWalletIfSufficient atomically decreases the balance by amount, but
	// only when the current balance covers it. Returns ErrInsufficientBalance
	// when the conditional update matches no row.
	DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) error
}

// LedgerEntryRepository defines the interface for the append-only wallet audit trail.
type LedgerEntryRepository interface {
	// CreateEntry persists a new ledger entry.
	CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error

	// FindEntriesByWallet retrieves entries for a wallet, newest first.
	FindEntriesByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]*entity.LedgerEntry, error)
}
