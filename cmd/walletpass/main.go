package main

import (
	"context"
	"log/slog"
	"os"

	"walletpass/config"
	"walletpass/internal/bundle"
	"walletpass/internal/delivery"
	"walletpass/internal/delivery/http"
	"walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/router/handler"
	"walletpass/internal/domain/service"
	logs "walletpass/internal/infra/log"
	"walletpass/internal/infra/persistence/postgres"
	"walletpass/internal/infra/push"
	"walletpass/internal/infra/signing"
	"walletpass/internal/infra/wallet"
	"walletpass/internal/usecase/impl"

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
			postgres.NewSubjectRepository,
			postgres.NewDeviceRepository,
			postgres.NewRegistrationRepository,
			postgres.NewErrorLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newSigner,
			push.NewAPNsTransport,
			wallet.NewDelegate,
			bundle.NewPackager,
		),
	)
}

// newSigner creates the manifest signer from the signing configuration
func newSigner(cfg *config.Config) (service.Signer, error) {
	return signing.NewSigner(cfg.Signing)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewNotificationService,
			impl.NewBundleService,
			impl.NewErrorLogService,
			impl.NewSubjectService,
			impl.NewPersonalizationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewBundleHandler,
			handler.NewPushHandler,
			handler.NewLogHandler,
			handler.NewPersonalizationHandler,
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
