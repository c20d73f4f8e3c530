package model

import (
	"time"

	"github.com/google/uuid"
)

// FeeSettingModel mirrors the 'fee_settings' table. Global rows carry a NULL
// restaurant_id; restaurant overrides reference their restaurant.
type FeeSettingModel struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Scope                 string     `gorm:"type:varchar(20);not null;index"`
	RestaurantID          *uuid.UUID `gorm:"type:uuid;index"`
	BaseFee               float64    `gorm:"type:numeric(12,2);not null;default:0"`
	PerKmFee              float64    `gorm:"type:numeric(12,2);not null;default:0"`
	MinFee                float64    `gorm:"type:numeric(12,2);not null;default:0"`
	MaxFee                float64    `gorm:"type:numeric(12,2);not null;default:0"`
	FreeDeliveryThreshold float64    `gorm:"type:numeric(12,2);not null;default:0"`
	IsActive              bool       `gorm:"not null;default:true"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeeSettingModel) TableName() string {
	return "fee_settings"
}

// DeliveryZoneModel mirrors the 'delivery_zones' table. Bands are half-open
// intervals [min_distance_km, max_distance_km).
type DeliveryZoneModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	MinDistanceKm float64   `gorm:"type:double precision;not null;default:0"`
	MaxDistanceKm float64   `gorm:"type:double precision;not null;default:0"`
	Fee           float64   `gorm:"type:numeric(12,2);not null;default:0"`
	EstimatedTime string    `gorm:"type:varchar(50);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryZoneModel) TableName() string {
	return "delivery_zones"
}
