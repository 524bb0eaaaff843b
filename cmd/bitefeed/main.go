package main

import (
	"context"
	"log/slog"
	"os"

	"bitefeed/config"
	"bitefeed/internal/delivery"
	"bitefeed/internal/delivery/http"
	"bitefeed/internal/delivery/http/middleware"
	"bitefeed/internal/delivery/http/router/handler"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/infra/auth"
	"bitefeed/internal/infra/catalog"
	logs "bitefeed/internal/infra/log"
	"bitefeed/internal/infra/location"
	"bitefeed/internal/infra/persistence/firestore"
	"bitefeed/internal/usecase/impl"

	firestoreclient "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
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
		firestore.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newCatalogRepository,
			firestore.NewSavedStore,
			firestore.NewBookingRepository,
		),
	)
}

// newCatalogRepository wraps the Firestore catalog with the sample fallback
// so that a flaky backend degrades to the built-in restaurants instead of an
// empty feed.
func newCatalogRepository(client *firestoreclient.Client, cfg *config.Config, logger *slog.Logger) repository.CatalogRepository {
	return catalog.WithFallback(firestore.NewCatalogRepository(client, cfg, logger), cfg, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			location.NewAreaProvider,
			newTokenVerifier,
		),
	)
}

// newTokenVerifier selects the token verifier from configuration: "firebase"
// verifies hosted Firebase ID tokens, anything else uses the static HMAC
// verifier meant for local development.
func newTokenVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth config is required")
	}

	if cfg.Auth.Mode == "firebase" {
		return auth.NewFirebaseVerifier(ctx, cfg)
	}

	return auth.NewStaticVerifier(cfg)
}

func newThemeMatcher() *impl.ThemeMatcher {
	return impl.NewThemeMatcher(nil)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newThemeMatcher,
			impl.NewFeedService,
			impl.NewSessionRegistry,
			impl.NewSlotResolver,
			impl.NewSavedService,
			impl.NewBookingService,
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
			handler.NewFeedHandler,
			handler.NewSavedHandler,
			handler.NewBookingHandler,
			handler.NewLocationHandler,
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
