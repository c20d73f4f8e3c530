package model

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalRequestModel mirrors the 'withdrawal_requests' table. Status
// transitions are applied as conditional updates guarded by the current
// status column.
type WithdrawalRequestModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerType     string    `gorm:"type:varchar(20);not null;index:idx_withdrawals_owner"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index:idx_withdrawals_owner"`
	Amount        float64   `gorm:"type:numeric(14,2);not null"`
	AccountNumber string    `gorm:"type:varchar(50);not null"`
	BankName      string    `gorm:"type:varchar(100);not null"`
	AccountHolder string    `gorm:"type:varchar(100);not null"`
	RequestedBy   string    `gorm:"type:varchar(100)"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	ApprovedBy    string    `gorm:"type:varchar(100)"`
	RejectReason  string    `gorm:"type:text"`
	ApprovedAt    *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WithdrawalRequestModel) TableName() string {
	return "withdrawal_requests"
}
