package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"sofra/internal/delivery/http/response"
	"sofra/internal/domain/entity"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	LedgerUC usecase.LedgerUsecase
	Logger   *slog.Logger
}

// WalletHandler holds dependencies for wallet and settlement handlers
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	ledgerUC usecase.LedgerUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		ledgerUC: params.LedgerUC,
		logger:   params.Logger,
	}
}

// AddBalanceRequest represents the request body for a manual wallet credit
type AddBalanceRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// GetDriverWallet handles retrieving a driver's wallet
func (h *WalletHandler) GetDriverWallet(c echo.Context) error {
	return h.getWallet(c, entity.OwnerTypeDriver)
}

// GetRestaurantWallet handles retrieving a restaurant's wallet
func (h *WalletHandler) GetRestaurantWallet(c echo.Context) error {
	return h.getWallet(c, entity.OwnerTypeRestaurant)
}

// AddDriverBalance handles crediting a driver's wallet
func (h *WalletHandler) AddDriverBalance(c echo.Context) error {
	return h.addBalance(c, entity.OwnerTypeDriver)
}

// AddRestaurantBalance handles crediting a restaurant's wallet
func (h *WalletHandler) AddRestaurantBalance(c echo.Context) error {
	return h.addBalance(c, entity.OwnerTypeRestaurant)
}

// GetDriverLedger handles retrieving a driver's wallet ledger
func (h *WalletHandler) GetDriverLedger(c echo.Context) error {
	return h.getLedger(c, entity.OwnerTypeDriver)
}

// GetRestaurantLedger handles retrieving a restaurant's wallet ledger
func (h *WalletHandler) GetRestaurantLedger(c echo.Context) error {
	return h.getLedger(c, entity.OwnerTypeRestaurant)
}

// SettleOrder handles triggering settlement for a completed order.
// Settling an already-settled order returns the original settlement with 200.
func (h *WalletHandler) SettleOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	result, err := h.ledgerUC.SettleOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Order settled successfully"
	if result.AlreadySettled {
		message = "Order was already settled"
	}

	return response.Success(c, http.StatusOK, result, message)
}

func (h *WalletHandler) getWallet(c echo.Context, ownerType entity.OwnerType) error {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	wallet, err := h.walletUC.GetWallet(c.Request().Context(), ownerType, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "Wallet retrieved successfully")
}

func (h *WalletHandler) addBalance(c echo.Context, ownerType entity.OwnerType) error {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	var req AddBalanceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid balance input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	wallet, err := h.walletUC.AddBalance(c.Request().Context(), ownerType, ownerID, req.Amount, req.Description)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, wallet, "Balance added successfully")
}

func (h *WalletHandler) getLedger(c echo.Context, ownerType entity.OwnerType) error {
	ownerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		limit = parsed
	}

	entries, err := h.walletUC.GetLedger(c.Request().Context(), ownerType, ownerID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Ledger retrieved successfully")
}
