package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the financial columns of the 'orders' table. The order
// lifecycle is owned upstream; this service only reads these rows.
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Subtotal     float64   `gorm:"type:numeric(14,2);not null;default:0"`
	DeliveryFee  float64   `gorm:"type:numeric(12,2);not null;default:0"`
	Status       string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// SettlementModel mirrors the 'settlements' table. The unique index on
// order_id is the settlement idempotency key: a second insert for the same
// order fails with a duplicate-key violation.
type SettlementModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Subtotal             float64   `gorm:"type:numeric(14,2);not null"`
	DeliveryFee          float64   `gorm:"type:numeric(12,2);not null"`
	RestaurantEarnings   float64   `gorm:"type:numeric(14,2);not null"`
	DriverEarnings       float64   `gorm:"type:numeric(12,2);not null"`
	CompanyCommission    float64   `gorm:"type:numeric(14,2);not null"`
	CompanyDeliveryShare float64   `gorm:"type:numeric(12,2);not null"`
	CreatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettlementModel) TableName() string {
	return "settlements"
}
