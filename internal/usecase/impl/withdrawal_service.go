package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sofra/config"
	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
	walletRepo     repository.WalletRepository
	txManager      repository.TransactionManager
	config         *config.Config
	logger         *slog.Logger
}

// WithdrawalServiceParams holds dependencies for WithdrawalService, injected by Fx.
type WithdrawalServiceParams struct {
	fx.In

	WithdrawalRepo repository.WithdrawalRepository
	WalletRepo     repository.WalletRepository
	TxManager      repository.TransactionManager
	Config         *config.Config
	Logger         *slog.Logger
}

// NewWithdrawalService creates a new withdrawal service instance
func NewWithdrawalService(params WithdrawalServiceParams) usecase.WithdrawalUsecase {
	return &withdrawalService{
		withdrawalRepo: params.WithdrawalRepo,
		walletRepo:     params.WalletRepo,
		txManager:      params.TxManager,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// CreateWithdrawal files a new pending request. The balance is checked but not
// reserved: it may be gone by approval time, which is why ApproveWithdrawal
// re-checks with a conditional debit.
func (s *withdrawalService) CreateWithdrawal(ctx context.Context, input *usecase.CreateWithdrawalInput) (*entity.WithdrawalRequest, error) {
	if !input.OwnerType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown entity type %q", input.OwnerType))
	}
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidAmount
	}
	if minAmount := s.config.MinWithdrawalAmount(); minAmount > 0 && input.Amount < minAmount {
		return nil, domainerrors.ErrInvalidAmount.WithDetails(fmt.Sprintf("amount must be at least %.2f", minAmount))
	}

	wallet, err := s.walletRepo.FindWalletByOwner(ctx, input.OwnerType, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			// No wallet means nothing has ever been earned.
			return nil, domainerrors.ErrInsufficientBalance
		}

		return nil, errors.Wrap(err, "failed to find wallet for withdrawal")
	}

	if !wallet.IsActive {
		return nil, domainerrors.ErrWalletInactive
	}
	if wallet.Balance < input.Amount {
		return nil, domainerrors.ErrInsufficientBalance
	}

	request := &entity.WithdrawalRequest{
		ID:            uuid.New(),
		OwnerType:     input.OwnerType,
		OwnerID:       input.OwnerID,
		Amount:        input.Amount,
		AccountNumber: input.AccountNumber,
		BankName:      input.BankName,
		AccountHolder: input.AccountHolder,
		RequestedBy:   input.RequestedBy,
		Status:        entity.WithdrawalStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := s.withdrawalRepo.CreateWithdrawal(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create withdrawal request")
	}

	s.logger.Info("withdrawal request created",
		slog.String("requestID", request.ID.String()),
		slog.String("ownerType", request.OwnerType.String()),
		slog.Float64("amount", request.Amount),
	)

	return request, nil
}

// ApproveWithdrawal debits the wallet and marks the request approved, both in
// one transaction. The conditional debit is the authoritative balance check:
// if the balance dropped since the request was filed, nothing is committed.
func (s *withdrawalService) ApproveWithdrawal(ctx context.Context, id uuid.UUID, approvedBy string) (*entity.WithdrawalRequest, error) {
	request, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !request.CanApprove() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot approve a %s request", request.Status))
	}

	approvedAt := time.Now()

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		walletRepo := repos.NewWalletRepository()

		wallet, err := walletRepo.FindWalletByOwner(ctx, request.OwnerType, request.OwnerID)
		if err != nil {
			return errors.Wrap(err, "failed to find wallet for approval")
		}

		// The wallet may have been deactivated since the request was filed.
		if !wallet.IsActive {
			return domainerrors.ErrWalletInactive
		}

		if err := repos.NewWithdrawalRepository().MarkApproved(ctx, request.ID, approvedBy, approvedAt); err != nil {
			if errors.Is(err, repository.ErrWithdrawalStatusConflict) {
				return domainerrors.ErrInvalidTransition
			}

			return errors.Wrap(err, "failed to mark withdrawal approved")
		}

		if err := walletRepo.DebitWalletIfSufficient(ctx, wallet.ID, request.Amount); err != nil {
			if errors.Is(err, repository.ErrInsufficientBalance) {
				// Roll the approval back; the balance dropped since the request was filed.
				return domainerrors.ErrInsufficientBalance
			}

			return errors.Wrap(err, "failed to debit wallet for withdrawal")
		}

		entry := &entity.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    wallet.ID,
			Direction:   entity.LedgerDebit,
			Amount:      request.Amount,
			Description: fmt.Sprintf("withdrawal %s approved by %s", request.ID, approvedBy),
			CreatedAt:   approvedAt,
		}

		return repos.NewLedgerEntryRepository().CreateEntry(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	request.Status = entity.WithdrawalStatusApproved
	request.ApprovedBy = approvedBy
	request.ApprovedAt = &approvedAt
	request.UpdatedAt = approvedAt

	s.logger.Info("withdrawal request approved",
		slog.String("requestID", request.ID.String()),
		slog.Float64("amount", request.Amount),
		slog.String("approvedBy", approvedBy),
	)

	return request, nil
}

// RejectWithdrawal marks a pending request rejected. No balance change.
func (s *withdrawalService) RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string) (*entity.WithdrawalRequest, error) {
	request, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !request.CanReject() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot reject a %s request", request.Status))
	}

	if err := s.withdrawalRepo.MarkRejected(ctx, request.ID, reason); err != nil {
		if errors.Is(err, repository.ErrWithdrawalStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to mark withdrawal rejected")
	}

	request.Status = entity.WithdrawalStatusRejected
	request.RejectReason = reason
	request.UpdatedAt = time.Now()

	return request, nil
}

// CompleteWithdrawal marks an approved request as paid out. The wallet was
// already debited at approval time.
func (s *withdrawalService) CompleteWithdrawal(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	request, err := s.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	if !request.CanComplete() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot complete a %s request", request.Status))
	}

	completedAt := time.Now()
	if err := s.withdrawalRepo.MarkCompleted(ctx, request.ID, completedAt); err != nil {
		if errors.Is(err, repository.ErrWithdrawalStatusConflict) {
			return nil, domainerrors.ErrInvalidTransition
		}

		return nil, errors.Wrap(err, "failed to mark withdrawal completed")
	}

	request.Status = entity.WithdrawalStatusCompleted
	request.CompletedAt = &completedAt
	request.UpdatedAt = completedAt

	return request, nil
}

// GetWithdrawal retrieves a single request.
func (s *withdrawalService) GetWithdrawal(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	return s.findRequest(ctx, id)
}

// ListWithdrawalsByOwner retrieves the requests filed by an owner, newest first.
func (s *withdrawalService) ListWithdrawalsByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.WithdrawalRequest, error) {
	if !ownerType.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown entity type %q", ownerType))
	}

	requests, err := s.withdrawalRepo.FindWithdrawalsByOwner(ctx, ownerType, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals by owner")
	}

	return requests, nil
}

// ListWithdrawalsByStatus retrieves requests in a status, oldest first.
func (s *withdrawalService) ListWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.WithdrawalRequest, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails(fmt.Sprintf("unknown status %q", status))
	}

	requests, err := s.withdrawalRepo.FindWithdrawalsByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list withdrawals by status")
	}

	return requests, nil
}

func (s *withdrawalService) findRequest(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	request, err := s.withdrawalRepo.FindWithdrawalByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWithdrawalNotFound) {
			return nil, domainerrors.ErrWithdrawalNotFound
		}

		return nil, errors.Wrap(err, "failed to find withdrawal request")
	}

	return request, nil
}
