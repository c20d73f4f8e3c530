package impl

import (
	"context"
	"testing"

	"sofra/config"
	"sofra/internal/domain/entity"
	domainerrors "sofra/internal/domain/errors"
	"sofra/internal/domain/repository"
	"sofra/internal/domain/service"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPricingService(
	restaurantRepo *MockRestaurantRepository,
	feeSettingRepo *MockFeeSettingRepository,
	zoneRepo *MockDeliveryZoneRepository,
	distance service.DistanceCalculator,
) usecase.PricingUsecase {
	return &pricingService{
		restaurantRepo: restaurantRepo,
		feeSettingRepo: feeSettingRepo,
		zoneRepo:       zoneRepo,
		distance:       distance,
		config:         &config.Config{},
	}
}

func sanaaRestaurant() *entity.Restaurant {
	return &entity.Restaurant{
		ID:             uuid.New(),
		Name:           "Bab al-Yemen Kitchen",
		Latitude:       15.3694,
		Longitude:      44.1910,
		CommissionRate: 10,
		IsActive:       true,
	}
}

func perKmSetting(restaurantID uuid.UUID) *entity.FeeSetting {
	return &entity.FeeSetting{
		ID:                    uuid.New(),
		Scope:                 entity.FeeScopeRestaurant,
		RestaurantID:          &restaurantID,
		BaseFee:               0,
		PerKmFee:              50,
		MinFee:                0,
		MaxFee:                1000,
		FreeDeliveryThreshold: 3000,
		IsActive:              true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestPricingService_QuoteDeliveryFee_PerKmScenario(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(perKmSetting(restaurant.ID), nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 2000,
	})
	require.NoError(t, err)

	assert.True(t, quote.Success)
	assert.False(t, quote.IsFreeDelivery)
	assert.Equal(t, 250.0, quote.Fee)
	assert.Equal(t, 5.0, quote.DistanceKm)
	assert.Equal(t, "30-45 min", quote.EstimatedTime)
}

func TestPricingService_QuoteDeliveryFee_FreeDeliveryAboveThreshold(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(perKmSetting(restaurant.ID), nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 3500,
	})
	require.NoError(t, err)

	assert.True(t, quote.Success)
	assert.True(t, quote.IsFreeDelivery)
	assert.Zero(t, quote.Fee)
	assert.Equal(t, 250.0, quote.OriginalFee)
	assert.NotEmpty(t, quote.FreeDeliveryReason)
}

func TestPricingService_QuoteDeliveryFee_MissingCustomerLocation(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		OrderSubtotal: 2000,
	})
	require.NoError(t, err)

	assert.False(t, quote.Success)
	assert.Zero(t, quote.Fee)
	assert.NotEmpty(t, quote.FailureReason)
	feeSettingRepo.AssertNotCalled(t, "FindActiveRestaurantSetting", mock.Anything, mock.Anything)
}

func TestPricingService_QuoteDeliveryFee_OutOfRangeCustomerLocation(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(95.0),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 2000,
	})
	require.NoError(t, err)

	assert.False(t, quote.Success)
	assert.Equal(t, "customer location is out of range", quote.FailureReason)
}

func TestPricingService_QuoteDeliveryFee_RestaurantWithoutLocation(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()
	restaurant.Latitude = 0
	restaurant.Longitude = 0

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 2000,
	})
	require.NoError(t, err)

	assert.False(t, quote.Success)
	assert.Equal(t, "restaurant location is not set", quote.FailureReason)
}

func TestPricingService_QuoteDeliveryFee_UnknownRestaurant(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantID := uuid.New()
	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID: restaurantID,
		CustomerLat:  floatPtr(15.41),
		CustomerLng:  floatPtr(44.19),
	})
	assert.Nil(t, quote)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound, err)
}

func TestPricingService_QuoteDeliveryFee_FallsBackToGlobalThenBuiltin(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 3})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(nil, repository.ErrFeeSettingNotFound)
	feeSettingRepo.On("FindActiveGlobalSetting", mock.Anything).
		Return(nil, repository.ErrFeeSettingNotFound)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 500,
	})
	require.NoError(t, err)

	// Built-in fallback charges nothing.
	assert.True(t, quote.Success)
	assert.Zero(t, quote.Fee)
	assert.False(t, quote.IsFreeDelivery)
}

func TestPricingService_QuoteDeliveryFee_SkipsInvertedBoundsSetting(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	inverted := perKmSetting(restaurant.ID)
	inverted.MinFee = 500
	inverted.MaxFee = 100
	require.Error(t, inverted.Validate())

	global := &entity.FeeSetting{
		ID:       uuid.New(),
		Scope:    entity.FeeScopeGlobal,
		BaseFee:  0,
		PerKmFee: 30,
		MinFee:   0,
		MaxFee:   200,
		IsActive: true,
	}

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).Return(inverted, nil)
	feeSettingRepo.On("FindActiveGlobalSetting", mock.Anything).Return(global, nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 2000,
	})
	require.NoError(t, err)

	// The inverted override is skipped; the global setting prices the quote,
	// so the billed fee never exceeds a configured maximum.
	assert.True(t, quote.Success)
	assert.Equal(t, 150.0, quote.Fee)
	assert.LessOrEqual(t, quote.Fee, global.MaxFee)
}

func TestPricingService_QuoteDeliveryFee_InvertedGlobalFallsBackToBuiltin(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	invertedGlobal := &entity.FeeSetting{
		ID:       uuid.New(),
		Scope:    entity.FeeScopeGlobal,
		MinFee:   900,
		MaxFee:   100,
		IsActive: true,
	}

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(nil, repository.ErrFeeSettingNotFound)
	feeSettingRepo.On("FindActiveGlobalSetting", mock.Anything).Return(invertedGlobal, nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 500,
	})
	require.NoError(t, err)

	assert.True(t, quote.Success)
	assert.Zero(t, quote.Fee)
}

func TestPricingService_QuoteDeliveryFee_ZoneEstimatedTime(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 7.5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(perKmSetting(restaurant.ID), nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{
			{
				Name:          "inner ring",
				MinDistanceKm: 0,
				MaxDistanceKm: 5,
				EstimatedTime: "20-30 min",
				IsActive:      true,
			},
			{
				Name:          "outer ring",
				MinDistanceKm: 5,
				MaxDistanceKm: 10,
				EstimatedTime: "45-60 min",
				IsActive:      true,
			},
		}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.44),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "45-60 min", quote.EstimatedTime)
}

func TestPricingService_QuoteDeliveryFee_ZoneBandEdgeBelongsToNextBand(t *testing.T) {
	restaurantRepo := new(MockRestaurantRepository)
	feeSettingRepo := new(MockFeeSettingRepository)
	zoneRepo := new(MockDeliveryZoneRepository)
	restaurant := sanaaRestaurant()

	// Exactly on the shared edge of two [min, max) bands.
	service := newPricingService(restaurantRepo, feeSettingRepo, zoneRepo, stubDistance{km: 5})

	restaurantRepo.On("FindRestaurantByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	feeSettingRepo.On("FindActiveRestaurantSetting", mock.Anything, restaurant.ID).
		Return(perKmSetting(restaurant.ID), nil)
	zoneRepo.On("FindActiveZones", mock.Anything).
		Return([]*entity.DeliveryZone{
			{Name: "inner ring", MinDistanceKm: 0, MaxDistanceKm: 5, EstimatedTime: "20-30 min", IsActive: true},
			{Name: "outer ring", MinDistanceKm: 5, MaxDistanceKm: 10, EstimatedTime: "45-60 min", IsActive: true},
		}, nil)

	quote, err := service.QuoteDeliveryFee(context.Background(), &usecase.QuoteInput{
		RestaurantID:  restaurant.ID,
		CustomerLat:   floatPtr(15.41),
		CustomerLng:   floatPtr(44.19),
		OrderSubtotal: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, "45-60 min", quote.EstimatedTime)
}

func TestClampFee_MonotonicUntilSaturation(t *testing.T) {
	setting := &entity.FeeSetting{BaseFee: 20, PerKmFee: 50, MinFee: 40, MaxFee: 300}

	prev := -1.0
	for d := 0.0; d <= 10; d += 0.25 {
		fee := clampFee(setting.BaseFee+d*setting.PerKmFee, setting.MinFee, setting.MaxFee)
		assert.GreaterOrEqual(t, fee, prev, "fee must be non-decreasing in distance")
		assert.GreaterOrEqual(t, fee, setting.MinFee)
		assert.LessOrEqual(t, fee, setting.MaxFee)
		prev = fee
	}

	assert.Equal(t, setting.MaxFee, prev, "fee saturates at max")
}
