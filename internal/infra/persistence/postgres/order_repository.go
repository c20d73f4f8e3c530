// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		DriverID:     data.DriverID,
		Subtotal:     data.Subtotal,
		DeliveryFee:  data.DeliveryFee,
		Status:       entity.OrderStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// settlementRepository implements the repository.SettlementRepository interface.
type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository is the constructor for settlementRepository.
func NewSettlementRepository(db *gorm.DB) repository.SettlementRepository {
	return &settlementRepository{
		db: db,
	}
}

// CreateSettlement persists a new settlement. The unique index on order_id is
// the idempotency key: a repeated settlement resolves to DO NOTHING instead of
// a constraint error, so the surrounding transaction stays usable and callers
// receive ErrDuplicateSettlement from the zero-row insert.
func (repo *settlementRepository) CreateSettlement(ctx context.Context, settlement *entity.Settlement) error {
	settlementM := fromSettlementDomain(settlement)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}).
		Create(settlementM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create settlement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDuplicateSettlement
	}

	settlement.ID = settlementM.ID
	settlement.CreatedAt = settlementM.CreatedAt

	return nil
}

// FindSettlementByOrder retrieves the settlement for an order.
func (repo *settlementRepository) FindSettlementByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Settlement, error) {
	var settlementM model.SettlementModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&settlementM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettlementNotFound
		}

		return nil, errors.Wrap(err, "failed to find settlement by order")
	}

	return toSettlementDomain(&settlementM), nil
}

// toSettlementDomain converts a GORM SettlementModel to a domain Settlement entity.
func toSettlementDomain(data *model.SettlementModel) *entity.Settlement {
	if data == nil {
		return nil
	}

	return &entity.Settlement{
		ID:                   data.ID,
		OrderID:              data.OrderID,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		RestaurantEarnings:   data.RestaurantEarnings,
		DriverEarnings:       data.DriverEarnings,
		CompanyCommission:    data.CompanyCommission,
		CompanyDeliveryShare: data.CompanyDeliveryShare,
		CreatedAt:            data.CreatedAt,
	}
}

// fromSettlementDomain converts a domain Settlement entity to a GORM SettlementModel.
func fromSettlementDomain(data *entity.Settlement) *model.SettlementModel {
	if data == nil {
		return nil
	}

	return &model.SettlementModel{
		ID:                   data.ID,
		OrderID:              data.OrderID,
		Subtotal:             data.Subtotal,
		DeliveryFee:          data.DeliveryFee,
		RestaurantEarnings:   data.RestaurantEarnings,
		DriverEarnings:       data.DriverEarnings,
		CompanyCommission:    data.CompanyCommission,
		CompanyDeliveryShare: data.CompanyDeliveryShare,
		CreatedAt:            data.CreatedAt,
	}
}
