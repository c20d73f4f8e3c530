package impl

import (
	"context"
	"testing"

	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletFixture struct {
	walletRepo *MockWalletRepository
	ledgerRepo *MockLedgerEntryRepository
	service    usecase.WalletUsecase
}

func newWalletFixture() *walletFixture {
	f := &walletFixture{
		walletRepo: new(MockWalletRepository),
		ledgerRepo: new(MockLedgerEntryRepository),
	}

	tx := &stubTxManager{factory: &stubRepoFactory{
		walletRepo: f.walletRepo,
		ledgerRepo: f.ledgerRepo,
	}}

	f.service = &walletService{
		walletRepo: f.walletRepo,
		ledgerRepo: f.ledgerRepo,
		txManager:  tx,
	}

	return f
}

func TestWalletService_GetWallet_CreatesOnFirstUse(t *testing.T) {
	f := newWalletFixture()
	ownerID := uuid.New()

	fresh := &entity.Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: entity.OwnerTypeRestaurant,
		IsActive:  true,
	}
	f.walletRepo.On("GetOrCreateWallet", mock.Anything, entity.OwnerTypeRestaurant, ownerID).Return(fresh, nil)

	wallet, err := f.service.GetWallet(context.Background(), entity.OwnerTypeRestaurant, ownerID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, wallet.Balance)
	assert.Equal(t, ownerID, wallet.OwnerID)
}

func TestWalletService_GetWallet_RejectsUnknownOwnerType(t *testing.T) {
	f := newWalletFixture()

	wallet, err := f.service.GetWallet(context.Background(), "customer", uuid.New())
	assert.Nil(t, wallet)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INPUT", appErr.ErrorCode())
}

func TestWalletService_AddBalance_CreditsAndRecordsEntry(t *testing.T) {
	f := newWalletFixture()
	ownerID := uuid.New()

	wallet := &entity.Wallet{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		OwnerType:   entity.OwnerTypeDriver,
		Balance:     120.5,
		TotalEarned: 400,
		IsActive:    true,
	}

	f.walletRepo.On("GetOrCreateWallet", mock.Anything, entity.OwnerTypeDriver, ownerID).Return(wallet, nil)
	f.walletRepo.On("CreditWallet", mock.Anything, wallet.ID, 79.5).Return(nil)
	f.ledgerRepo.On("CreateEntry", mock.Anything, mock.MatchedBy(func(entry *entity.LedgerEntry) bool {
		return entry.WalletID == wallet.ID &&
			entry.Direction == entity.LedgerCredit &&
			entry.Amount == 79.5 &&
			entry.Description == "promo bonus"
	})).Return(nil)

	credited, err := f.service.AddBalance(context.Background(), entity.OwnerTypeDriver, ownerID, 79.5, "promo bonus")
	require.NoError(t, err)

	assert.Equal(t, 200.0, credited.Balance)
	assert.Equal(t, 479.5, credited.TotalEarned)
	f.ledgerRepo.AssertExpectations(t)
}

func TestWalletService_AddBalance_RejectsNonPositiveAmount(t *testing.T) {
	f := newWalletFixture()

	for _, amount := range []float64{0, -10} {
		wallet, err := f.service.AddBalance(context.Background(), entity.OwnerTypeDriver, uuid.New(), amount, "top-up")
		assert.Nil(t, wallet)
		assert.Equal(t, domainerrors.ErrInvalidAmount, err)
	}

	f.walletRepo.AssertNotCalled(t, "CreditWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_AddBalance_InactiveWallet(t *testing.T) {
	f := newWalletFixture()
	ownerID := uuid.New()

	wallet := &entity.Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: entity.OwnerTypeDriver,
		IsActive:  false,
	}
	f.walletRepo.On("GetOrCreateWallet", mock.Anything, entity.OwnerTypeDriver, ownerID).Return(wallet, nil)

	credited, err := f.service.AddBalance(context.Background(), entity.OwnerTypeDriver, ownerID, 50, "top-up")
	assert.Nil(t, credited)
	assert.Equal(t, domainerrors.ErrWalletInactive, err)
	f.walletRepo.AssertNotCalled(t, "CreditWallet", mock.Anything, mock.Anything, mock.Anything)
}

func TestWalletService_GetLedger_DefaultsLimit(t *testing.T) {
	f := newWalletFixture()
	ownerID := uuid.New()

	wallet := &entity.Wallet{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: entity.OwnerTypeRestaurant,
		IsActive:  true,
	}
	entries := []*entity.LedgerEntry{
		{ID: uuid.New(), WalletID: wallet.ID, Direction: entity.LedgerCredit, Amount: 100},
	}

	f.walletRepo.On("FindWalletByOwner", mock.Anything, entity.OwnerTypeRestaurant, ownerID).Return(wallet, nil)
	f.ledgerRepo.On("FindEntriesByWallet", mock.Anything, wallet.ID, defaultLedgerLimit).Return(entries, nil)

	got, err := f.service.GetLedger(context.Background(), entity.OwnerTypeRestaurant, ownerID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWalletService_GetLedger_WalletNeverCreated(t *testing.T) {
	f := newWalletFixture()
	ownerID := uuid.New()

	f.walletRepo.On("FindWalletByOwner", mock.Anything, entity.OwnerTypeDriver, ownerID).
		Return(nil, repository.ErrWalletNotFound)

	got, err := f.service.GetLedger(context.Background(), entity.OwnerTypeDriver, ownerID, 20)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrWalletNotFound, err)
}
