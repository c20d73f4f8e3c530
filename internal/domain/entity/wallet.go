// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a running balance owned by a driver or a restaurant. It is
// credited by order settlement and manual top-ups, and debited only when a
// withdrawal request is approved. The balance never goes negative; debits are
// applied as conditional updates at the persistence layer.
type Wallet struct {
	ID          uuid.UUID `json:"id"`           // The Global Unique Identifier (GUID) for the wallet.
	OwnerID     uuid.UUID `json:"owner_id"`     // The ID of the driver or restaurant that owns this wallet.
	OwnerType   OwnerType `json:"owner_type"`   // The type of the owner.
	Balance     float64   `json:"balance"`      // Current available balance.
	TotalEarned float64   `json:"total_earned"` // Lifetime credited amount, never reduced by withdrawals.
	IsActive    bool      `json:"is_active"`    // Indicates if the wallet can be operated on.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LedgerDirection marks a ledger entry as a credit or a debit.
type LedgerDirection string

const (
	// LedgerCredit increases a wallet balance.
	LedgerCredit LedgerDirection = "credit"
	// LedgerDebit decreases a wallet balance.
	LedgerDebit LedgerDirection = "debit"
)

// LedgerEntry is the audit record written alongside every wallet balance
// mutation. Entries are append-only.
type LedgerEntry struct {
	ID          uuid.UUID       `json:"id"`
	WalletID    uuid.UUID       `json:"wallet_id"`
	OrderID     *uuid.UUID      `json:"order_id,omitempty"` // Set when the entry originates from an order settlement.
	Direction   LedgerDirection `json:"direction"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}
