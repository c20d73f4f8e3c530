package impl

import (
	"context"
	"time"

	"sofra/internal/domain/entity"
	"sofra/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository interfaces used by the
// services in this package, plus a transaction manager stub that runs the
// callback against the same mocks so assertions cover in-transaction calls.

type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) FindDriverByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Driver), args.Error(1)
}

type MockFeeSettingRepository struct {
	mock.Mock
}

func (m *MockFeeSettingRepository) FindActiveRestaurantSetting(ctx context.Context, restaurantID uuid.UUID) (*entity.FeeSetting, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FeeSetting), args.Error(1)
}

func (m *MockFeeSettingRepository) FindActiveGlobalSetting(ctx context.Context) (*entity.FeeSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.FeeSetting), args.Error(1)
}

type MockDeliveryZoneRepository struct {
	mock.Mock
}

func (m *MockDeliveryZoneRepository) FindActiveZones(ctx context.Context) ([]*entity.DeliveryZone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.DeliveryZone), args.Error(1)
}

type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetOrCreateWallet(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindWalletByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) (*entity.Wallet, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) CreditWallet(ctx context.Context, id uuid.UUID, amount float64) error {
	args := m.Called(ctx, id, amount)

	return args.Error(0)
}

func (m *MockWalletRepository) DebitWalletIfSufficient(ctx context.Context, id uuid.UUID, amount float64) error {
	args := m.Called(ctx, id, amount)

	return args.Error(0)
}

type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) CreateEntry(ctx context.Context, entry *entity.LedgerEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *MockLedgerEntryRepository) FindEntriesByWallet(ctx context.Context, walletID uuid.UUID, limit int) ([]*entity.LedgerEntry, error) {
	args := m.Called(ctx, walletID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.LedgerEntry), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

type MockSettlementRepository struct {
	mock.Mock
}

func (m *MockSettlementRepository) CreateSettlement(ctx context.Context, settlement *entity.Settlement) error {
	args := m.Called(ctx, settlement)

	return args.Error(0)
}

func (m *MockSettlementRepository) FindSettlementByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Settlement, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Settlement), args.Error(1)
}

type MockWithdrawalRepository struct {
	mock.Mock
}

func (m *MockWithdrawalRepository) CreateWithdrawal(ctx context.Context, request *entity.WithdrawalRequest) error {
	args := m.Called(ctx, request)

	return args.Error(0)
}

func (m *MockWithdrawalRepository) FindWithdrawalByID(ctx context.Context, id uuid.UUID) (*entity.WithdrawalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.WithdrawalRequest), args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawalsByOwner(ctx context.Context, ownerType entity.OwnerType, ownerID uuid.UUID) ([]*entity.WithdrawalRequest, error) {
	args := m.Called(ctx, ownerType, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WithdrawalRequest), args.Error(1)
}

func (m *MockWithdrawalRepository) FindWithdrawalsByStatus(ctx context.Context, status entity.WithdrawalStatus) ([]*entity.WithdrawalRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.WithdrawalRequest), args.Error(1)
}

func (m *MockWithdrawalRepository) MarkApproved(ctx context.Context, id uuid.UUID, approvedBy string, approvedAt time.Time) error {
	args := m.Called(ctx, id, approvedBy, approvedAt)

	return args.Error(0)
}

func (m *MockWithdrawalRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)

	return args.Error(0)
}

func (m *MockWithdrawalRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	args := m.Called(ctx, id, completedAt)

	return args.Error(0)
}

// stubDistance returns a fixed distance regardless of input.
type stubDistance struct {
	km float64
}

func (s stubDistance) DistanceKm(_, _ entity.Coordinate) float64 {
	return s.km
}

// stubTxManager runs the callback immediately against a factory backed by the
// given mocks, so credits and status transitions inside transactions remain
// visible to test assertions.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepoFactory struct {
	walletRepo     repository.WalletRepository
	ledgerRepo     repository.LedgerEntryRepository
	settlementRepo repository.SettlementRepository
	withdrawalRepo repository.WithdrawalRepository
	orderRepo      repository.OrderRepository
}

func (f *stubRepoFactory) NewWalletRepository() repository.WalletRepository {
	return f.walletRepo
}

func (f *stubRepoFactory) NewLedgerEntryRepository() repository.LedgerEntryRepository {
	return f.ledgerRepo
}

func (f *stubRepoFactory) NewSettlementRepository() repository.SettlementRepository {
	return f.settlementRepo
}

func (f *stubRepoFactory) NewWithdrawalRepository() repository.WithdrawalRepository {
	return f.withdrawalRepo
}

func (f *stubRepoFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}
