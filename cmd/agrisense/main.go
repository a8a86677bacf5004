package main

import (
	"context"
	"log/slog"
	"os"

	"agrisense/config"
	"agrisense/internal/delivery"
	"agrisense/internal/delivery/http"
	"agrisense/internal/delivery/http/middleware"
	"agrisense/internal/delivery/http/router/handler"
	"agrisense/internal/domain/service"
	"agrisense/internal/infra/ai"
	"agrisense/internal/infra/auth"
	"agrisense/internal/infra/export"
	logs "agrisense/internal/infra/log"
	"agrisense/internal/infra/notification"
	"agrisense/internal/infra/persistence/postgres"
	"agrisense/internal/infra/pubsub"
	"agrisense/internal/infra/qrcode"
	"agrisense/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
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
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewReadingRepository,
			postgres.NewAdvisoryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewJWTService,
			ai.NewOpenAIEngine,
			newQRCodeService,
			newReadingExporter,
		),
	)
}

// newPasswordHasher creates a bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newReadingExporter opens the configured blob bucket for CSV archival.
// Without export config the archive lands in the local temp directory.
func newReadingExporter(params export.ExporterParams, cfg *config.Config) (service.ReadingExporter, error) {
	bucketURL := "file://" + os.TempDir()
	if cfg.Export != nil && cfg.Export.BucketURL != "" {
		bucketURL = cfg.Export.BucketURL
	}

	return export.NewBlobExporter(params, bucketURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewIngestionService,
			impl.NewAdvisoryService,
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
			handler.NewUserHandler,
			handler.NewDeviceHandler,
			handler.NewIngestHandler,
			handler.NewAdvisoryHandler,
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
