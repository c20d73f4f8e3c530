package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ledgerService struct {
	orderRepo      repository.OrderRepository
	restaurantRepo repository.RestaurantRepository
	driverRepo     repository.DriverRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	RestaurantRepo repository.RestaurantRepository
	DriverRepo     repository.DriverRepository
	TxManager      repository.TransactionManager
	Logger         *slog.Logger
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		orderRepo:      params.OrderRepo,
		restaurantRepo: params.RestaurantRepo,
		driverRepo:     params.DriverRepo,
		txManager:      params.TxManager,
		logger:         params.Logger,
	}
}

// SettleOrder distributes a completed order's monetary value across the
// restaurant wallet, the driver wallet and the platform accrual. The order id
// is the idempotency key: the settlement row carries a unique constraint on
// it, and a duplicate attempt commits nothing and reports AlreadySettled.
func (s *ledgerService) SettleOrder(ctx context.Context, orderID uuid.UUID) (*usecase.SettlementResult, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order for settlement")
	}

	if order.Status != entity.OrderStatusCompleted {
		return nil, domainerrors.ErrOrderNotCompleted
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, order.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant for settlement")
	}

	driver, err := s.driverRepo.FindDriverByID(ctx, order.DriverID)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver for settlement")
	}

	settlement := buildSettlement(order, restaurant, driver)
	result := &usecase.SettlementResult{Settlement: settlement}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewSettlementRepository().CreateSettlement(ctx, settlement); err != nil {
			if !errors.Is(err, repository.ErrDuplicateSettlement) {
				return errors.Wrap(err, "failed to create settlement")
			}

			existing, findErr := repos.NewSettlementRepository().FindSettlementByOrder(ctx, order.ID)
			if findErr != nil {
				return errors.Wrap(findErr, "failed to load existing settlement")
			}

			result.Settlement = existing
			result.AlreadySettled = true

			return nil
		}

		restaurantWallet, err := s.creditParty(ctx, repos, entity.OwnerTypeRestaurant, order.RestaurantID,
			settlement.RestaurantEarnings, order.ID, fmt.Sprintf("order %s restaurant earnings", order.ID))
		if err != nil {
			return err
		}

		driverWallet, err := s.creditParty(ctx, repos, entity.OwnerTypeDriver, order.DriverID,
			settlement.DriverEarnings, order.ID, fmt.Sprintf("order %s delivery earnings", order.ID))
		if err != nil {
			return err
		}

		result.RestaurantWallet = restaurantWallet
		result.DriverWallet = driverWallet

		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.AlreadySettled {
		s.logger.Info("order already settled",
			slog.String("orderID", order.ID.String()),
		)

		return result, nil
	}

	s.logger.Info("order settled",
		slog.String("orderID", order.ID.String()),
		slog.Float64("restaurantEarnings", settlement.RestaurantEarnings),
		slog.Float64("driverEarnings", settlement.DriverEarnings),
		slog.Float64("companyTotal", settlement.CompanyTotal()),
	)

	return result, nil
}

// creditParty lazily creates the owner's wallet, applies an atomic credit and
// records the matching ledger entry, all inside the settlement transaction.
func (s *ledgerService) creditParty(ctx context.Context, repos repository.RepositoryFactory,
	ownerType entity.OwnerType, ownerID uuid.UUID, amount float64, orderID uuid.UUID, description string,
) (*entity.Wallet, error) {
	walletRepo := repos.NewWalletRepository()

	wallet, err := walletRepo.GetOrCreateWallet(ctx, ownerType, ownerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get %s wallet", ownerType)
	}

	if amount > 0 {
		if err := walletRepo.CreditWallet(ctx, wallet.ID, amount); err != nil {
			return nil, errors.Wrapf(err, "failed to credit %s wallet", ownerType)
		}

		entry := &entity.LedgerEntry{
			ID:          uuid.New(),
			WalletID:    wallet.ID,
			OrderID:     &orderID,
			Direction:   entity.LedgerCredit,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := repos.NewLedgerEntryRepository().CreateEntry(ctx, entry); err != nil {
			return nil, errors.Wrapf(err, "failed to record %s ledger entry", ownerType)
		}

		wallet.Balance = roundMoney(wallet.Balance + amount)
		wallet.TotalEarned = roundMoney(wallet.TotalEarned + amount)
	}

	return wallet, nil
}

// buildSettlement derives the financial split of a completed order.
//
// Invariant: RestaurantEarnings + DriverEarnings + CompanyTotal() equals
// Subtotal + DeliveryFee to the cent; the company shares are computed as
// remainders so rounding never loses money.
func buildSettlement(order *entity.Order, restaurant *entity.Restaurant, driver *entity.Driver) *entity.Settlement {
	companyCommission := roundMoney(order.Subtotal * restaurant.CommissionRate / 100)
	restaurantEarnings := roundMoney(order.Subtotal - companyCommission)

	driverEarnings := roundMoney(order.DeliveryFee * driver.CommissionRate / 100)
	companyDeliveryShare := roundMoney(order.DeliveryFee - driverEarnings)

	return &entity.Settlement{
		ID:                   uuid.New(),
		OrderID:              order.ID,
		Subtotal:             order.Subtotal,
		DeliveryFee:          order.DeliveryFee,
		RestaurantEarnings:   restaurantEarnings,
		DriverEarnings:       driverEarnings,
		CompanyCommission:    companyCommission,
		CompanyDeliveryShare: companyDeliveryShare,
		CreatedAt:            time.Now(),
	}
}
