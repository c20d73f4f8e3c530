package impl

import (
	"context"
	"log/slog"
	"testing"

	"sofra/config"
	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type withdrawalFixture struct {
	withdrawalRepo *MockWithdrawalRepository
	walletRepo     *MockWalletRepository
	ledgerRepo     *MockLedgerEntryRepository
	service        usecase.WithdrawalUsecase
}

func newWithdrawalFixture(cfg *config.Config) *withdrawalFixture {
	f := &withdrawalFixture{
		withdrawalRepo: new(MockWithdrawalRepository),
		walletRepo:     new(MockWalletRepository),
		ledgerRepo:     new(MockLedgerEntryRepository),
	}

	tx := &stubTxManager{factory: &stubRepoFactory{
		walletRepo:     f.walletRepo,
		ledgerRepo:     f.ledgerRepo,
		withdrawalRepo: f.withdrawalRepo,
	}}

	f.service = &withdrawalService{
		withdrawalRepo: f.withdrawalRepo,
		walletRepo:     f.walletRepo,
		txManager:      tx,
		config:         cfg,
		logger:         slog.Default(),
	}

	return f
}

func driverWalletWithBalance(balance float64) *entity.Wallet {
	return &entity.Wallet{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		OwnerType: entity.OwnerTypeDriver,
		Balance:   balance,
		IsActive:  true,
	}
}

func createInput(wallet *entity.Wallet, amount float64) *usecase.CreateWithdrawalInput {
	return &usecase.CreateWithdrawalInput{
		OwnerType:     wallet.OwnerType,
		OwnerID:       wallet.OwnerID,
		Amount:        amount,
		AccountNumber: "1002003004",
		BankName:      "CAC Bank",
		AccountHolder: "Ahmed Saleh",
		RequestedBy:   "driver-app",
	}
}

func TestWithdrawalService_Create_Success(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(500)

	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)
	f.withdrawalRepo.On("CreateWithdrawal", mock.Anything, mock.AnythingOfType("*entity.WithdrawalRequest")).Return(nil)

	request, err := f.service.CreateWithdrawal(context.Background(), createInput(wallet, 200))
	require.NoError(t, err)

	assert.Equal(t, entity.WithdrawalStatusPending, request.Status)
	assert.Equal(t, 200.0, request.Amount)
	assert.Equal(t, wallet.OwnerID, request.OwnerID)
}

func TestWithdrawalService_Create_InsufficientBalance(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(100)

	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)

	request, err := f.service.CreateWithdrawal(context.Background(), createInput(wallet, 150))
	assert.Nil(t, request)
	assert.Equal(t, domainerrors.ErrInsufficientBalance, err)

	// No row is created when the balance check fails.
	f.withdrawalRepo.AssertNotCalled(t, "CreateWithdrawal", mock.Anything, mock.Anything)
}

func TestWithdrawalService_Create_NoWalletMeansNoBalance(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(0)

	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).
		Return(nil, repository.ErrWalletNotFound)

	request, err := f.service.CreateWithdrawal(context.Background(), createInput(wallet, 50))
	assert.Nil(t, request)
	assert.Equal(t, domainerrors.ErrInsufficientBalance, err)
}

func TestWithdrawalService_Create_RejectsInvalidInput(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{
		Withdrawal: &config.WithdrawalConfig{MinAmount: 100},
	})
	wallet := driverWalletWithBalance(500)

	tests := []struct {
		name  string
		mutip func(input *usecase.CreateWithdrawalInput)
	}{
		{
			name:  "zero amount",
			mutip: func(input *usecase.CreateWithdrawalInput) { input.Amount = 0 },
		},
		{
			name:  "negative amount",
			mutip: func(input *usecase.CreateWithdrawalInput) { input.Amount = -20 },
		},
		{
			name:  "below configured floor",
			mutip: func(input *usecase.CreateWithdrawalInput) { input.Amount = 50 },
		},
		{
			name:  "unknown entity type",
			mutip: func(input *usecase.CreateWithdrawalInput) { input.OwnerType = "customer" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := createInput(wallet, 200)
			tt.mutip(input)

			request, err := f.service.CreateWithdrawal(context.Background(), input)
			assert.Nil(t, request)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestWithdrawalService_Approve_DebitsWallet(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(500)

	request := &entity.WithdrawalRequest{
		ID:        uuid.New(),
		OwnerType: wallet.OwnerType,
		OwnerID:   wallet.OwnerID,
		Amount:    200,
		Status:    entity.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)
	f.withdrawalRepo.On("MarkApproved", mock.Anything, request.ID, "admin", mock.AnythingOfType("time.Time")).Return(nil)
	f.walletRepo.On("DebitWalletIfSufficient", mock.Anything, wallet.ID, 200.0).Return(nil)
	f.ledgerRepo.On("CreateEntry", mock.Anything, mock.AnythingOfType("*entity.LedgerEntry")).Return(nil)

	approved, err := f.service.ApproveWithdrawal(context.Background(), request.ID, "admin")
	require.NoError(t, err)

	assert.Equal(t, entity.WithdrawalStatusApproved, approved.Status)
	assert.Equal(t, "admin", approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)
}

func TestWithdrawalService_Approve_WalletDeactivatedSinceRequest(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(500)
	wallet.IsActive = false

	request := &entity.WithdrawalRequest{
		ID:        uuid.New(),
		OwnerType: wallet.OwnerType,
		OwnerID:   wallet.OwnerID,
		Amount:    200,
		Status:    entity.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)

	approved, err := f.service.ApproveWithdrawal(context.Background(), request.ID, "admin")
	assert.Nil(t, approved)
	assert.Equal(t, domainerrors.ErrWalletInactive, err)

	// A frozen wallet blocks the approval before any state changes.
	f.withdrawalRepo.AssertNotCalled(t, "MarkApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.walletRepo.AssertNotCalled(t, "DebitWalletIfSufficient", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalService_Approve_BalanceDroppedSinceRequest(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(100)

	request := &entity.WithdrawalRequest{
		ID:        uuid.New(),
		OwnerType: wallet.OwnerType,
		OwnerID:   wallet.OwnerID,
		Amount:    200,
		Status:    entity.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)
	f.withdrawalRepo.On("MarkApproved", mock.Anything, request.ID, "admin", mock.AnythingOfType("time.Time")).Return(nil)
	f.walletRepo.On("DebitWalletIfSufficient", mock.Anything, wallet.ID, 200.0).
		Return(repository.ErrInsufficientBalance)

	approved, err := f.service.ApproveWithdrawal(context.Background(), request.ID, "admin")
	assert.Nil(t, approved)
	assert.Equal(t, domainerrors.ErrInsufficientBalance, err)
	f.ledgerRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
}

func TestWithdrawalService_Approve_OnlyOnceUnderConcurrency(t *testing.T) {
	// Two admins race to approve the same request: the second conditional
	// transition hits the status guard and surfaces an invalid transition.
	f := newWithdrawalFixture(&config.Config{})
	wallet := driverWalletWithBalance(500)

	request := &entity.WithdrawalRequest{
		ID:        uuid.New(),
		OwnerType: wallet.OwnerType,
		OwnerID:   wallet.OwnerID,
		Amount:    200,
		Status:    entity.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.walletRepo.On("FindWalletByOwner", mock.Anything, wallet.OwnerType, wallet.OwnerID).Return(wallet, nil)
	f.withdrawalRepo.On("MarkApproved", mock.Anything, request.ID, "second-admin", mock.AnythingOfType("time.Time")).
		Return(repository.ErrWithdrawalStatusConflict)

	approved, err := f.service.ApproveWithdrawal(context.Background(), request.ID, "second-admin")
	assert.Nil(t, approved)
	assert.Equal(t, domainerrors.ErrInvalidTransition, err)
	f.walletRepo.AssertNotCalled(t, "DebitWalletIfSufficient", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdrawalService_Reject_RecordsReason(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})

	request := &entity.WithdrawalRequest{
		ID:     uuid.New(),
		Amount: 200,
		Status: entity.WithdrawalStatusPending,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.withdrawalRepo.On("MarkRejected", mock.Anything, request.ID, "bank details mismatch").Return(nil)

	rejected, err := f.service.RejectWithdrawal(context.Background(), request.ID, "bank details mismatch")
	require.NoError(t, err)

	assert.Equal(t, entity.WithdrawalStatusRejected, rejected.Status)
	assert.Equal(t, "bank details mismatch", rejected.RejectReason)
}

func TestWithdrawalService_TerminalStatesAreImmutable(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})

	tests := []struct {
		name   string
		status entity.WithdrawalStatus
		act    func(id uuid.UUID) error
	}{
		{
			name:   "approve a rejected request",
			status: entity.WithdrawalStatusRejected,
			act: func(id uuid.UUID) error {
				_, err := f.service.ApproveWithdrawal(context.Background(), id, "admin")
				return err
			},
		},
		{
			name:   "reject an approved request",
			status: entity.WithdrawalStatusApproved,
			act: func(id uuid.UUID) error {
				_, err := f.service.RejectWithdrawal(context.Background(), id, "late")
				return err
			},
		},
		{
			name:   "complete a pending request",
			status: entity.WithdrawalStatusPending,
			act: func(id uuid.UUID) error {
				_, err := f.service.CompleteWithdrawal(context.Background(), id)
				return err
			},
		},
		{
			name:   "complete a completed request",
			status: entity.WithdrawalStatusCompleted,
			act: func(id uuid.UUID) error {
				_, err := f.service.CompleteWithdrawal(context.Background(), id)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := &entity.WithdrawalRequest{ID: uuid.New(), Amount: 100, Status: tt.status}
			f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)

			err := tt.act(request.ID)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
		})
	}
}

func TestWithdrawalService_Complete_MarksApprovedRequest(t *testing.T) {
	f := newWithdrawalFixture(&config.Config{})

	request := &entity.WithdrawalRequest{
		ID:     uuid.New(),
		Amount: 200,
		Status: entity.WithdrawalStatusApproved,
	}

	f.withdrawalRepo.On("FindWithdrawalByID", mock.Anything, request.ID).Return(request, nil)
	f.withdrawalRepo.On("MarkCompleted", mock.Anything, request.ID, mock.AnythingOfType("time.Time")).Return(nil)

	completed, err := f.service.CompleteWithdrawal(context.Background(), request.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.WithdrawalStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
}
