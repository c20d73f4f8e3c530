// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sofra/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FeeHandler        *handler.FeeHandler
	WalletHandler     *handler.WalletHandler
	WithdrawalHandler *handler.WithdrawalHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	feeHandler        *handler.FeeHandler
	walletHandler     *handler.WalletHandler
	withdrawalHandler *handler.WithdrawalHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		feeHandler:        params.FeeHandler,
		walletHandler:     params.WalletHandler,
		withdrawalHandler: params.WithdrawalHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Delivery-fee quotes
		api.POST("/delivery-fees/calculate", r.feeHandler.CalculateFee)

		// Driver wallets
		driverGroup := api.Group("/drivers/:id/wallet")
		{
			driverGroup.GET("", r.walletHandler.GetDriverWallet)
			driverGroup.POST("/add-balance", r.walletHandler.AddDriverBalance)
			driverGroup.GET("/ledger", r.walletHandler.GetDriverLedger)
		}

		// Restaurant wallets
		restaurantGroup := api.Group("/restaurants/:id/wallet")
		{
			restaurantGroup.GET("", r.walletHandler.GetRestaurantWallet)
			restaurantGroup.POST("/add-balance", r.walletHandler.AddRestaurantBalance)
			restaurantGroup.GET("/ledger", r.walletHandler.GetRestaurantLedger)
		}

		// Order settlement
		api.POST("/orders/:id/settle", r.walletHandler.SettleOrder)

		// Withdrawal requests
		withdrawalGroup := api.Group("/withdrawal-requests")
		{
			withdrawalGroup.POST("", r.withdrawalHandler.CreateWithdrawal)
			withdrawalGroup.GET("", r.withdrawalHandler.ListWithdrawals)
			withdrawalGroup.GET("/:id", r.withdrawalHandler.GetWithdrawal)
		}

		// Admin withdrawal workflow
		adminGroup := api.Group("/admin/withdrawal-requests")
		{
			adminGroup.GET("", r.withdrawalHandler.ListWithdrawalsByStatus)
			adminGroup.POST("/:id/approve", r.withdrawalHandler.ApproveWithdrawal)
			adminGroup.POST("/:id/reject", r.withdrawalHandler.RejectWithdrawal)
			adminGroup.POST("/:id/complete", r.withdrawalHandler.CompleteWithdrawal)
		}
	}
}
