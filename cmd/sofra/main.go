package main

import (
	"context"
	"log/slog"
	"os"

	"sofra/config"
	"sofra/internal/delivery"
	"sofra/internal/delivery/http"
	"sofra/internal/delivery/http/middleware"
	"sofra/internal/delivery/http/router/handler"
	"sofra/internal/infra/geo"
	logs "sofra/internal/infra/log"
	"sofra/internal/infra/persistence/postgres"
	"sofra/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRestaurantRepository,
			postgres.NewDriverRepository,
			postgres.NewFeeSettingRepository,
			postgres.NewDeliveryZoneRepository,
			postgres.NewWalletRepository,
			postgres.NewLedgerEntryRepository,
			postgres.NewOrderRepository,
			postgres.NewSettlementRepository,
			postgres.NewWithdrawalRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geo.NewHaversineCalculator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPricingService,
			impl.NewLedgerService,
			impl.NewWalletService,
			impl.NewWithdrawalService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFeeHandler,
			handler.NewWalletHandler,
			handler.NewWithdrawalHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
