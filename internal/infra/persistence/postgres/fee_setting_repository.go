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

// feeSettingRepository implements the repository.FeeSettingRepository interface.
type feeSettingRepository struct {
	db *gorm.DB
}

// NewFeeSettingRepository is the constructor for feeSettingRepository.
func NewFeeSettingRepository(db *gorm.DB) repository.FeeSettingRepository {
	return &feeSettingRepository{
		db: db,
	}
}

// FindActiveRestaurantSetting retrieves the active restaurant-scoped override
// for the given restaurant. When several are active, the most recently
// updated one wins.
func (repo *feeSettingRepository) FindActiveRestaurantSetting(ctx context.Context, restaurantID uuid.UUID) (*entity.FeeSetting, error) {
	var settingM model.FeeSettingModel

	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND restaurant_id = ? AND is_active = ?", entity.FeeScopeRestaurant.String(), restaurantID, true).
		Order("updated_at DESC").
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeeSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant fee setting")
	}

	return toFeeSettingDomain(&settingM), nil
}

// FindActiveGlobalSetting retrieves the active global default setting, most
// recently updated first.
func (repo *feeSettingRepository) FindActiveGlobalSetting(ctx context.Context) (*entity.FeeSetting, error) {
	var settingM model.FeeSettingModel

	if err := repo.db.WithContext(ctx).
		Where("scope = ? AND is_active = ?", entity.FeeScopeGlobal.String(), true).
		Order("updated_at DESC").
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeeSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find global fee setting")
	}

	return toFeeSettingDomain(&settingM), nil
}

// toFeeSettingDomain converts a GORM FeeSettingModel to a domain FeeSetting entity.
func toFeeSettingDomain(data *model.FeeSettingModel) *entity.FeeSetting {
	if data == nil {
		return nil
	}

	return &entity.FeeSetting{
		ID:                    data.ID,
		Scope:                 entity.FeeScope(data.Scope),
		RestaurantID:          data.RestaurantID,
		BaseFee:               data.BaseFee,
		PerKmFee:              data.PerKmFee,
		MinFee:                data.MinFee,
		MaxFee:                data.MaxFee,
		FreeDeliveryThreshold: data.FreeDeliveryThreshold,
		IsActive:              data.IsActive,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// deliveryZoneRepository implements the repository.DeliveryZoneRepository interface.
type deliveryZoneRepository struct {
	db *gorm.DB
}

// NewDeliveryZoneRepository is the constructor for deliveryZoneRepository.
func NewDeliveryZoneRepository(db *gorm.DB) repository.DeliveryZoneRepository {
	return &deliveryZoneRepository{
		db: db,
	}
}

// FindActiveZones retrieves all active zones ordered by min distance ascending.
func (repo *deliveryZoneRepository) FindActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	var zoneModels []*model.DeliveryZoneModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("min_distance_km ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery zones")
	}

	zones := make([]*entity.DeliveryZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toDeliveryZoneDomain(zoneM))
	}

	return zones, nil
}

// toDeliveryZoneDomain converts a GORM DeliveryZoneModel to a domain DeliveryZone entity.
func toDeliveryZoneDomain(data *model.DeliveryZoneModel) *entity.DeliveryZone {
	if data == nil {
		return nil
	}

	return &entity.DeliveryZone{
		ID:            data.ID,
		Name:          data.Name,
		MinDistanceKm: data.MinDistanceKm,
		MaxDistanceKm: data.MaxDistanceKm,
		Fee:           data.Fee,
		EstimatedTime: data.EstimatedTime,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
