package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type RestaurantModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Latitude       float64   `gorm:"type:double precision;not null;default:0"`
	Longitude      float64   `gorm:"type:double precision;not null;default:0"`
	CommissionRate float64   `gorm:"type:numeric(5,2);not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
