package impl

import (
	"context"
	"fmt"

	"sofra/config"
	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/domain/service"
	"sofra/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	reasonMissingCustomerLocation   = "customer location is required"
	reasonInvalidCustomerLocation   = "customer location is out of range"
	reasonMissingRestaurantLocation = "restaurant location is not set"
)

type pricingService struct {
	restaurantRepo repository.RestaurantRepository
	feeSettingRepo repository.FeeSettingRepository
	zoneRepo       repository.DeliveryZoneRepository
	distance       service.DistanceCalculator
	config         *config.Config
}

// PricingServiceParams holds dependencies for PricingService, injected by Fx.
type PricingServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	FeeSettingRepo repository.FeeSettingRepository
	ZoneRepo       repository.DeliveryZoneRepository
	Distance       service.DistanceCalculator
	Config         *config.Config
}

// NewPricingService creates a new pricing service instance
func NewPricingService(params PricingServiceParams) usecase.PricingUsecase {
	return &pricingService{
		restaurantRepo: params.RestaurantRepo,
		feeSettingRepo: params.FeeSettingRepo,
		zoneRepo:       params.ZoneRepo,
		distance:       params.Distance,
		config:         params.Config,
	}
}

// QuoteDeliveryFee computes a fee quote for a customer location, restaurant
// and order subtotal. A degraded quote (Success=false) is returned for missing
// or invalid coordinates; errors are reserved for unknown restaurants and
// store failures.
func (s *pricingService) QuoteDeliveryFee(ctx context.Context, input *usecase.QuoteInput) (*entity.FeeQuote, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, input.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant for quote")
	}

	if input.CustomerLat == nil || input.CustomerLng == nil {
		return entity.FailedQuote(reasonMissingCustomerLocation), nil
	}

	customer, err := entity.NewCoordinate(*input.CustomerLat, *input.CustomerLng)
	if err != nil {
		return entity.FailedQuote(reasonInvalidCustomerLocation), nil
	}

	if !restaurant.HasLocation() {
		return entity.FailedQuote(reasonMissingRestaurantLocation), nil
	}

	distanceKm := s.distance.DistanceKm(customer, restaurant.Location())

	setting, err := s.resolveFeeSetting(ctx, input)
	if err != nil {
		return nil, err
	}

	rawFee := roundMoney(setting.BaseFee + distanceKm*setting.PerKmFee)
	fee := clampFee(rawFee, setting.MinFee, setting.MaxFee)

	estimatedTime, err := s.estimatedTimeFor(ctx, distanceKm)
	if err != nil {
		return nil, err
	}

	quote := &entity.FeeQuote{
		Success:       true,
		Fee:           fee,
		DistanceKm:    distanceKm,
		EstimatedTime: estimatedTime,
	}

	if setting.FreeDeliveryThreshold > 0 && input.OrderSubtotal >= setting.FreeDeliveryThreshold {
		// The original fee stays on the quote so the UI can show it struck through.
		quote.IsFreeDelivery = true
		quote.OriginalFee = fee
		quote.Fee = 0
		quote.FreeDeliveryReason = fmt.Sprintf("order subtotal %.2f meets the free delivery threshold %.2f",
			input.OrderSubtotal, setting.FreeDeliveryThreshold)
	}

	return quote, nil
}

// resolveFeeSetting picks the applicable fee configuration in priority order:
// active restaurant override, then active global setting, then the built-in
// fallback. A stored setting with inverted bounds (min above max) cannot
// produce a lawful fee and is skipped in favour of the next scope.
func (s *pricingService) resolveFeeSetting(ctx context.Context, input *usecase.QuoteInput) (*entity.FeeSetting, error) {
	setting, err := s.feeSettingRepo.FindActiveRestaurantSetting(ctx, input.RestaurantID)
	if err == nil && setting.Validate() == nil {
		return setting, nil
	}
	if err != nil && !errors.Is(err, repository.ErrFeeSettingNotFound) {
		return nil, errors.Wrap(err, "failed to find restaurant fee setting")
	}

	setting, err = s.feeSettingRepo.FindActiveGlobalSetting(ctx)
	if err == nil && setting.Validate() == nil {
		return setting, nil
	}
	if err != nil && !errors.Is(err, repository.ErrFeeSettingNotFound) {
		return nil, errors.Wrap(err, "failed to find global fee setting")
	}

	return entity.FallbackFeeSetting(), nil
}

// estimatedTimeFor resolves the delivery-time label from the zone bands, or
// the configured flat default when no band contains the distance. Zones come
// back ordered by min distance, so the first containing band wins on overlap.
func (s *pricingService) estimatedTimeFor(ctx context.Context, distanceKm float64) (string, error) {
	zones, err := s.zoneRepo.FindActiveZones(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to list delivery zones")
	}

	for _, zone := range zones {
		if zone.Contains(distanceKm) {
			return zone.EstimatedTime, nil
		}
	}

	return s.config.DefaultEstimatedTime(), nil
}
