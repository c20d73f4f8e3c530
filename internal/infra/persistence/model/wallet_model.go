package model

import (
	"time"

	"github.com/google/uuid"
)

// WalletModel mirrors the 'wallets' table. One wallet exists per owner; the
// composite unique index on (owner_type, owner_id) enforces it.
type WalletModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerType   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_wallets_owner"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wallets_owner"`
	Balance     float64   `gorm:"type:numeric(14,2);not null;default:0"`
	TotalEarned float64   `gorm:"type:numeric(14,2);not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	LedgerEntries []LedgerEntryModel `gorm:"foreignKey:WalletID"`
}

// TableName explicitly sets the table name for GORM.
func (WalletModel) TableName() string {
	return "wallets"
}

// LedgerEntryModel mirrors the 'ledger_entries' table. Rows are append-only;
// there is no UpdatedAt on purpose.
type LedgerEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WalletID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Direction   string     `gorm:"type:varchar(10);not null"`
	Amount      float64    `gorm:"type:numeric(14,2);not null"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}
