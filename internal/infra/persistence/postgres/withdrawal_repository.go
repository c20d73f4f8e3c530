// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// withdrawalRepository implements the repository.WithdrawalRepository interface.
//
// Every status transition is a conditional update guarded by the current
// status column. A zero row count means another actor moved the request
// first; the caller sees ErrWithdrawalStatusConflict.
type withdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository is the constructor for withdrawalRepository.
func NewWithdrawalRepository(db *gorm.DB) repository.WithdrawalRepository {
	return &withdrawalRepository{
		db: db,
	}
}

// CreateWithdrawal persists a new pending withdrawal request.
func (repo *withdrawalRepository) CreateWithdrawal(ctx context.Context, request *entity.WithdrawalRequest) error {
	requestM := fromWithdrawalDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create withdrawal request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindWithdrawalByID retrieves a withdrawal request by its unique ID.
func (repo *withdrawalRepository) FindWithdrawalByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	var requestM model.WithdrawalRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWithdrawalNotFound
		}

		return nil, errors.Wrap(err, "failed to find withdrawal request by ID")
	}

	return toWithdrawalDomain(&requestM), nil
}

// FindWithdrawalsByOwner retrieves all requests filed by an owner, newest first.
func (repo *withdrawalRepository) FindWithdrawalsByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.WithdrawalRequest, error) {
	var requestModels []*model.WithdrawalRequestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType.String(), ownerID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals by owner")
	}

	return toWithdrawalDomainSlice(requestModels), nil
}

// FindWithdrawalsByStatus retrieves all requests in the given status, oldest
// first so admins work the queue in arrival order.
func (repo *withdrawalRepository) FindWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.WithdrawalRequest, error) {
	var requestModels []*model.WithdrawalRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals by status")
	}

	return toWithdrawalDomainSlice(requestModels), nil
}

// MarkApproved transitions a pending request to approved.
func (repo *withdrawalRepository) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy string, approvedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WithdrawalRequestModel{}).
		Where("id = ? AND status = ?", id, entity.WithdrawalStatusPending.String()).
		Updates(map[string]interface{}{
			"status":      entity.WithdrawalStatusApproved.String(),
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		})

	return transitionResult(result, "failed to mark withdrawal approved")
}

// MarkRejected transitions a pending request to rejected with a reason.
func (repo *withdrawalRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WithdrawalRequestModel{}).
		Where("id = ? AND status = ?", id, entity.WithdrawalStatusPending.String()).
		Updates(map[string]interface{}{
			"status":        entity.WithdrawalStatusRejected.String(),
			"reject_reason": reason,
		})

	return transitionResult(result, "failed to mark withdrawal rejected")
}

// MarkCompleted transitions an approved request to completed.
func (repo *withdrawalRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WithdrawalRequestModel{}).
		Where("id = ? AND status = ?", id, entity.WithdrawalStatusApproved.String()).
		Updates(map[string]interface{}{
			"status":       entity.WithdrawalStatusCompleted.String(),
			"completed_at": completedAt,
		})

	return transitionResult(result, "failed to mark withdrawal completed")
}

func transitionResult(result *gorm.DB, message string) error {
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, message)
	}
	if result.RowsAffected == 0 {
		return repository.ErrWithdrawalStatusConflict
	}

	return nil
}

// toWithdrawalDomain converts a GORM WithdrawalRequestModel to a domain WithdrawalRequest entity.
func toWithdrawalDomain(data *model.WithdrawalRequestModel) *entity.WithdrawalRequest {
	if data == nil {
		return nil
	}

	return &entity.WithdrawalRequest{
		ID:            data.ID,
		OwnerType:     entity.OwnerType(data.OwnerType),
		OwnerID:       data.OwnerID,
		Amount:        data.Amount,
		AccountNumber: data.AccountNumber,
		BankName:      data.BankName,
		AccountHolder: data.AccountHolder,
		RequestedBy:   data.RequestedBy,
		Status:        entity.WithdrawalStatus(data.Status),
		ApprovedBy:    data.ApprovedBy,
		RejectReason:  data.RejectReason,
		ApprovedAt:    data.ApprovedAt,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toWithdrawalDomainSlice(models []*model.WithdrawalRequestModel) []*entity.WithdrawalRequest {
	requests := make([]*entity.WithdrawalRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toWithdrawalDomain(requestM))
	}

	return requests
}

// fromWithdrawalDomain converts a domain WithdrawalRequest entity to a GORM WithdrawalRequestModel.
func fromWithdrawalDomain(data *entity.WithdrawalRequest) *model.WithdrawalRequestModel {
	if data == nil {
		return nil
	}

	return &model.WithdrawalRequestModel{
		ID:            data.ID,
		OwnerType:     data.OwnerType.String(),
		OwnerID:       data.OwnerID,
		Amount:        data.Amount,
		AccountNumber: data.AccountNumber,
		BankName:      data.BankName,
		AccountHolder: data.AccountHolder,
		RequestedBy:   data.RequestedBy,
		Status:        data.Status.String(),
		ApprovedBy:    data.ApprovedBy,
		RejectReason:  data.RejectReason,
		ApprovedAt:    data.ApprovedAt,
		CompletedAt:   data.CompletedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
