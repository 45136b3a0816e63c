package main

import (
	"context"
	"log/slog"
	"os"

	"steakz/config"
	"steakz/internal/delivery"
	"steakz/internal/delivery/http"
	"steakz/internal/delivery/http/middleware"
	"steakz/internal/delivery/http/router/handler"
	"steakz/internal/infra/auth"
	logs "steakz/internal/infra/log"
	"steakz/internal/infra/persistence/postgres"
	"steakz/internal/infra/receipt"
	"steakz/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewBranchRepository,
			postgres.NewMenuItemRepository,
			postgres.NewInventoryRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewStatsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			receipt.NewReceiptService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewBranchService,
			impl.NewMenuService,
			impl.NewInventoryService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewStaffHandler,
			handler.NewBranchHandler,
			handler.NewMenuHandler,
			handler.NewInventoryHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewDashboardHandler,
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
