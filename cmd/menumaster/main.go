package main

import (
	"context"
	"log/slog"
	"os"

	"menumaster/config"
	"menumaster/internal/delivery"
	"menumaster/internal/delivery/api"
	"menumaster/internal/delivery/api/middleware"
	"menumaster/internal/delivery/api/router/handler"
	"menumaster/internal/delivery/scheduler"
	"menumaster/internal/domain/service"
	"menumaster/internal/infra/auth"
	"menumaster/internal/infra/clock"
	logs "menumaster/internal/infra/log"
	"menumaster/internal/infra/notification"
	"menumaster/internal/infra/persistence"
	"menumaster/internal/infra/pubsub"
	"menumaster/internal/infra/qrcode"
	"menumaster/internal/usecase"
	"menumaster/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedDefaultAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		persistence.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			clock.New,
			pubsub.NewEventPublisher,
			notification.NewOrderNotifier,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewAdminService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewReportService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
			handler.NewAdminUserHandler,
			handler.NewReportHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedDefaultAdmin runs after the store hooks so postgres and mongo are connected.
func seedDefaultAdmin(lc fx.Lifecycle, adminUC usecase.AdminUsecase, accountUC usecase.AccountUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := adminUC.EnsureDefaultAdmin(ctx); err != nil {
				return err
			}

			return accountUC.ReconcileSessions(ctx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
