package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel mirrors the 'drivers' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type DriverModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Phone          string    `gorm:"type:varchar(20)"`
	CommissionRate float64   `gorm:"type:numeric(5,2);not null;default:0"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "drivers"
}
