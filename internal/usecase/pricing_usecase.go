// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"sofra/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteInput carries everything the fee calculator needs for one quote.
// Latitude and longitude are pointers because the checkout UI may not have a
// customer location yet; a missing coordinate degrades the quote instead of
// failing the request.
type QuoteInput struct {
	RestaurantID  uuid.UUID
	CustomerLat   *float64
	CustomerLng   *float64
	OrderSubtotal float64
}

// PricingUsecase defines the delivery-fee calculation use cases.
type PricingUsecase interface {
	// QuoteDeliveryFee computes a fee quote for a customer location,
	// restaurant and order subtotal. Invalid or missing coordinates yield a
	// quote with Success=false; an error is returned only for store failures.
	QuoteDeliveryFee(ctx context.Context, input *QuoteInput) (*entity.FeeQuote, error)
}
