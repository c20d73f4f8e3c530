package handler

import (
	"log/slog"
	"net/http"

	"sofra/internal/delivery/http/response"
	"sofra/internal/domain/entity"
	"sofra/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WithdrawalHandlerParams holds dependencies for WithdrawalHandler, injected by Fx.
type WithdrawalHandlerParams struct {
	fx.In

	WithdrawalUC usecase.WithdrawalUsecase
	Logger       *slog.Logger
}

// WithdrawalHandler holds dependencies for withdrawal-request handlers
type WithdrawalHandler struct {
	withdrawalUC usecase.WithdrawalUsecase
	logger       *slog.Logger
}

// NewWithdrawalHandler is the constructor for WithdrawalHandler
func NewWithdrawalHandler(params WithdrawalHandlerParams) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUC: params.WithdrawalUC,
		logger:       params.Logger,
	}
}

// CreateWithdrawalRequest represents the request body for filing a withdrawal
type CreateWithdrawalRequest struct {
	EntityType    string    `json:"entity_type" validate:"required,oneof=driver restaurant"`
	EntityID      uuid.UUID `json:"entity_id" validate:"required"`
	Amount        float64   `json:"amount" validate:"required,gt=0"`
	AccountNumber string    `json:"account_number" validate:"required"`
	BankName      string    `json:"bank_name" validate:"required"`
	AccountHolder string    `json:"account_holder" validate:"required"`
	RequestedBy   string    `json:"requested_by"`
}

// RejectWithdrawalRequest represents the request body for rejecting a withdrawal
type RejectWithdrawalRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// ApproveWithdrawalRequest represents the request body for approving a withdrawal
type ApproveWithdrawalRequest struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

// CreateWithdrawal handles filing a new withdrawal request
func (h *WithdrawalHandler) CreateWithdrawal(c echo.Context) error {
	var req CreateWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid withdrawal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateWithdrawalInput{
		OwnerType:     entity.OwnerType(req.EntityType),
		OwnerID:       req.EntityID,
		Amount:        req.Amount,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
		RequestedBy:   req.RequestedBy,
	}

	request, err := h.withdrawalUC.CreateWithdrawal(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request, "Withdrawal request created successfully")
}

// ListWithdrawals handles listing the requests filed by an owner
func (h *WithdrawalHandler) ListWithdrawals(c echo.Context) error {
	ownerType := entity.OwnerType(c.QueryParam("entity_type"))
	if !ownerType.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "entity_type must be driver or restaurant")
	}

	ownerID, err := uuid.Parse(c.QueryParam("entity_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity_id")
	}

	requests, err := h.withdrawalUC.ListWithdrawalsByOwner(c.Request().Context(), ownerType, ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Withdrawal requests retrieved successfully")
}

// GetWithdrawal handles retrieving a single withdrawal request
func (h *WithdrawalHandler) GetWithdrawal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid withdrawal request ID")
	}

	request, err := h.withdrawalUC.GetWithdrawal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Withdrawal request retrieved successfully")
}

// ListWithdrawalsByStatus handles the admin review queue, filtered by status
func (h *WithdrawalHandler) ListWithdrawalsByStatus(c echo.Context) error {
	status := entity.WithdrawalStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.WithdrawalStatusPending
	}
	if !status.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown withdrawal status")
	}

	requests, err := h.withdrawalUC.ListWithdrawalsByStatus(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Withdrawal requests retrieved successfully")
}

// ApproveWithdrawal handles approving a pending request and debiting the wallet
func (h *WithdrawalHandler) ApproveWithdrawal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid withdrawal request ID")
	}

	var req ApproveWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.withdrawalUC.ApproveWithdrawal(c.Request().Context(), id, req.ApprovedBy)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Withdrawal request approved successfully")
}

// RejectWithdrawal handles rejecting a pending request
func (h *WithdrawalHandler) RejectWithdrawal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid withdrawal request ID")
	}

	var req RejectWithdrawalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	request, err := h.withdrawalUC.RejectWithdrawal(c.Request().Context(), id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Withdrawal request rejected successfully")
}

// CompleteWithdrawal handles marking an approved request as paid out
func (h *WithdrawalHandler) CompleteWithdrawal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid withdrawal request ID")
	}

	request, err := h.withdrawalUC.CompleteWithdrawal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, request, "Withdrawal request completed successfully")
}
