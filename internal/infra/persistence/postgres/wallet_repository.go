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

// walletRepository implements the repository.WalletRepository interface.
//
// Balance mutations are relative SQL updates, never read-modify-write, so
// concurrent settlements and withdrawals serialize at the row level.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// GetOrCreateWallet retrieves the wallet for an owner, creating an empty
// active wallet on first use. The insert ignores conflicts on the owner
// unique index, so two first-time callers both end up reading the same row.
func (repo *walletRepository) GetOrCreateWallet(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error) {
	walletM := model.WalletModel{
		ID:        uuid.New(),
		OwnerType: ownerType.String(),
		OwnerID:   ownerID,
		IsActive:  true,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_type"}, {Name: "owner_id"}},
			DoNothing: true,
		}).
		Create(&walletM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create wallet")
	}

	return repo.FindWalletByOwner(ctx, ownerType, ownerID)
}

// FindWalletByOwner retrieves the wallet for an owner without creating it.
func (repo *walletRepository) FindWalletByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error) {
	var walletM model.WalletModel

	if err := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType.String(), ownerID).
		First(&walletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet by owner")
	}

	return toWalletDomain(&walletM), nil
}

// CreditWallet atomically increases the balance and lifetime earnings of a
// wallet by amount.
func (repo *walletRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":      gorm.Expr("balance + ?", amount),
			"total_earned": gorm.Expr("total_earned + ?", amount),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit wallet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWalletNotFound
	}

	return nil
}

// DebitWalletIfSufficient atomically decreases the balance by amount, guarded
// by the current balance. A zero row count means the balance did not cover
// the amount (or the wallet vanished); either way nothing was written.
func (repo *walletRepository) DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WalletModel{}).
		Where("id = ? AND balance >= ?", id, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit wallet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientBalance
	}

	return nil
}

// toWalletDomain converts a GORM WalletModel to a domain Wallet entity.
func toWalletDomain(data *model.WalletModel) *entity.Wallet {
	if data == nil {
		return nil
	}

	return &entity.Wallet{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		OwnerType:   entity.OwnerType(data.OwnerType),
		Balance:     data.Balance,
		TotalEarned: data.TotalEarned,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// ledgerEntryRepository implements the repository.LedgerEntryRepository interface.
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository is the constructor for ledgerEntryRepository.
func NewLedgerEntryRepository(db *gorm.DB) repository.LedgerEntryRepository {
	return &ledgerEntryRepository{
		db: db,
	}
}

// CreateEntry persists a new ledger entry.
func (repo *ledgerEntryRepository) CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := fromLedgerEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrWalletNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ledger entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindEntriesByWallet retrieves entries for a wallet, newest first.
func (repo *ledgerEntryRepository) FindEntriesByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	var entryModels []*model.LedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	entries := make([]*entity.LedgerEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toLedgerEntryDomain(entryM))
	}

	return entries, nil
}

// toLedgerEntryDomain converts a GORM LedgerEntryModel to a domain LedgerEntry entity.
func toLedgerEntryDomain(data *model.LedgerEntryModel) *entity.LedgerEntry {
	if data == nil {
		return nil
	}

	return &entity.LedgerEntry{
		ID:          data.ID,
		WalletID:    data.WalletID,
		OrderID:     data.OrderID,
		Direction:   entity.LedgerDirection(data.Direction),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

// fromLedgerEntryDomain converts a domain LedgerEntry entity to a GORM LedgerEntryModel.
func fromLedgerEntryDomain(data *entity.LedgerEntry) *model.LedgerEntryModel {
	if data == nil {
		return nil
	}

	return &model.LedgerEntryModel{
		ID:          data.ID,
		WalletID:    data.WalletID,
		OrderID:     data.OrderID,
		Direction:   string(data.Direction),
		Amount:      data.Amount,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}
