package usecase

import (
	"context"

	"sofra/internal/domain/entity"

	"github.com/google/uuid"
)

// SettlementResult is the outcome of a settlement attempt. AlreadySettled is
// true when the order had been settled before; the embedded settlement then
// describes the original distribution and no balances were touched.
type SettlementResult struct {
	Settlement       *entity.Settlement `json:"settlement"`
	AlreadySettled   bool               `json:"already_settled"`
	RestaurantWallet *entity.Wallet     `json:"restaurant_wallet,omitempty"`
	DriverWallet     *entity.Wallet     `json:"driver_wallet,omitempty"`
}

// LedgerUsecase defines the order settlement use cases.
type LedgerUsecase interface {
	// SettleOrder distributes a completed order's monetary value across the
	// restaurant wallet, the driver wallet and the platform accrual, all in
	// one transaction. Settling an already-settled order is a no-op.
	SettleOrder(ctx context.Context, orderID uuid.UUID) (*SettlementResult, error)
}
