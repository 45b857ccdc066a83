package main

import (
	"context"
	"log/slog"
	"os"

	"roomie/config"
	"roomie/internal/delivery"
	"roomie/internal/delivery/http"
	"roomie/internal/delivery/http/middleware"
	"roomie/internal/delivery/http/router/handler"
	logs "roomie/internal/infra/log"
	"roomie/internal/infra/notification"
	"roomie/internal/infra/persistence/postgres"
	"roomie/internal/infra/pubsub"
	"roomie/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			// Expose dashboard tunables for the aggregation service
			func(cfg *config.Config) *config.DashboardConfig {
				return cfg.Dashboard
			},
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHouseholdRepository,
			postgres.NewRentRepository,
			postgres.NewBillRepository,
			postgres.NewChoreRepository,
			postgres.NewSensorRepository,
			postgres.NewNudgeRepository,
			postgres.NewChatRepository,
			postgres.NewNotificationRepository,
			postgres.NewCoachRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHouseholdService,
			impl.NewRentService,
			impl.NewBillService,
			impl.NewChoreService,
			impl.NewSensorService,
			impl.NewNudgeService,
			impl.NewChatService,
			impl.NewNotificationService,
			impl.NewCoachService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHouseholdHandler,
			handler.NewDashboardHandler,
			handler.NewRentHandler,
			handler.NewBillHandler,
			handler.NewChoreHandler,
			handler.NewSensorHandler,
			handler.NewNudgeHandler,
			handler.NewChatHandler,
			handler.NewNotificationHandler,
			handler.NewCoachHandler,
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
