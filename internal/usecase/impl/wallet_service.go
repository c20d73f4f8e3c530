package impl

import (
	"context"
	"fmt"
	"time"

	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultLedgerLimit = 50

type walletService struct {
	walletRepo repository.WalletRepository
	ledgerRepo repository.LedgerEntryRepository
	txManager  repository.TransactionManager
}

// WalletServiceParams holds dependencies for WalletService, injected by Fx.
type WalletServiceParams struct {
	fx.In

	WalletRepo repository.WalletRepository
	LedgerRepo repository.LedgerEntryRepository
	TxManager  repository.TransactionManager
}

// NewWalletService creates a new wallet service instance
func NewWalletService(params WalletServiceParams) usecase.WalletUsecase {
	return &walletService{
		walletRepo: params.WalletRepo,
		ledgerRepo: params.LedgerRepo,
		txManager:  params.TxManager,
	}
}

// GetWallet retrieves an owner's wallet, creating an empty one on first use.
func (s *walletService) GetWallet(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error) {
	if !ownerType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown entity type %q", ownerType))
	}

	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, ownerType, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get wallet")
	}

	return wallet, nil
}

// AddBalance credits an owner's wallet manually and records the ledger entry
// in the same transaction.
func (s *walletService) AddBalance(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID, amount float64, description string) (*entity.Wallet, error) {
	if !ownerType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown entity type %q", ownerType))
	}
	if amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}

	var wallet *entity.Wallet

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		walletRepo := repos.NewWalletRepository()

		found, err := walletRepo.GetOrCreateWallet(ctx, ownerType, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to get wallet for credit")
		}

		if !found.IsActive {
			return domainerrors.ErrWalletInactive
		}

		if err := walletRepo.CreditWallet(ctx, found.ID, amount); err != nil {
			return errors.Wrap(err, "failed to credit wallet")
		}

		entry := &entity.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    found.ID,
			Direction:   entity.LedgerCredit,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := repos.NewLedgerEntryRepository().CreateEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record ledger entry")
		}

		found.Balance = roundMoney(found.Balance + amount)
		found.TotalEarned = roundMoney(found.TotalEarned + amount)
		wallet = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return wallet, nil
}

// GetLedger retrieves the most recent ledger entries for an owner's wallet.
func (s *walletService) GetLedger(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	if !ownerType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown entity type %q", ownerType))
	}
	if limit <= 0 {
		limit = defaultLedgerLimit
	}

	wallet, err := s.walletRepo.FindWalletByOwner(ctx, ownerType, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			return nil, domainerrors.ErrWalletNotFound
		}

		return nil, errors.Wrap(err, "failed to find wallet for ledger")
	}

	entries, err := s.ledgerRepo.FindEntriesByWallet(ctx, wallet.ID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ledger entries")
	}

	return entries, nil
}
