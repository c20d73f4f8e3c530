// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"

	"sofra/internal/delivery/http/response"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeeHandlerParams holds dependencies for FeeHandler, injected by Fx.
type FeeHandlerParams struct {
	fx.In

	PricingUC usecase.PricingUsecase
	Logger    *slog.Logger
}

// FeeHandler holds dependencies for delivery-fee handlers
type FeeHandler struct {
	pricingUC usecase.PricingUsecase
	logger    *slog.Logger
}

// NewFeeHandler is the constructor for FeeHandler
func NewFeeHandler(params FeeHandlerParams) *FeeHandler {
	return &FeeHandler{
		pricingUC: params.PricingUC,
		logger:    params.Logger,
	}
}

// CalculateFeeRequest represents the request body for a fee quote.
// Coordinates are pointers: a checkout without a customer location still gets
// a well-formed degraded quote instead of a validation failure.
type CalculateFeeRequest struct {
	RestaurantID  uuid.UUID `json:"restaurant_id" validate:"required"`
	CustomerLat   *float64  `json:"customer_lat"`
	CustomerLng   *float64  `json:"customer_lng"`
	OrderSubtotal float64   `json:"order_subtotal" validate:"min=0"`
}

// CalculateFee handles computing a delivery-fee quote
func (h *FeeHandler) CalculateFee(c echo.Context) error {
	var req CalculateFeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fee calculation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.QuoteInput{
		RestaurantID:  req.RestaurantID,
		CustomerLat:   req.CustomerLat,
		CustomerLng:   req.CustomerLng,
		OrderSubtotal: req.OrderSubtotal,
	}

	quote, err := h.pricingUC.QuoteDeliveryFee(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Delivery fee calculated successfully")
}
