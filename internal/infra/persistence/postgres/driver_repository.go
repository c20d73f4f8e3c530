// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"sofra/internal/domain/entity"
	"sofra/internal/domain/repository"
	"sofra/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// driverRepository implements the repository.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{
		db: db,
	}
}

// FindDriverByID retrieves a driver by its unique ID.
func (repo *driverRepository) FindDriverByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driverM model.DriverModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&driverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by ID")
	}

	return toDriverDomain(&driverM), nil
}

// toDriverDomain converts a GORM DriverModel to a domain Driver entity.
func toDriverDomain(data *model.DriverModel) *entity.Driver {
	if data == nil {
		return nil
	}

	return &entity.Driver{
		ID:             data.ID,
		Name:           data.Name,
		Phone:          data.Phone,
		CommissionRate: data.CommissionRate,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
