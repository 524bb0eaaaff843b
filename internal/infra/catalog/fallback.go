package catalog

import (
	"context"
	"log/slog"

	"bitefeed/config"
	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"

	"github.com/pkg/errors"
)

// fallbackCatalog decorates a live catalog with the bundled sample data.
// Any fetch failure of the delegate is answered from the samples instead of
// surfacing an empty or broken feed.
type fallbackCatalog struct {
	delegate repository.CatalogRepository
	logger   *slog.Logger
}

// WithFallback wraps the delegate with the sample fallback. When the
// fallback is disabled in configuration the delegate is returned untouched.
func WithFallback(delegate repository.CatalogRepository, cfg *config.Config, logger *slog.Logger) repository.CatalogRepository {
	if cfg.Catalog != nil && !cfg.Catalog.FallbackEnabled {
		return delegate
	}

	return &fallbackCatalog{
		delegate: delegate,
		logger:   logger,
	}
}

// FetchActive retrieves the full active catalog.
func (repo *fallbackCatalog) FetchActive(ctx context.Context) ([]*entity.Restaurant, error) {
	restaurants, err := repo.delegate.FetchActive(ctx)
	if err != nil {
		repo.warn(ctx, "FetchActive", err)

		return SampleRestaurants(), nil
	}

	return restaurants, nil
}

// FetchByCuisine retrieves active restaurants matching the cuisine.
func (repo *fallbackCatalog) FetchByCuisine(ctx context.Context, cuisine string) ([]*entity.Restaurant, error) {
	restaurants, err := repo.delegate.FetchByCuisine(ctx, cuisine)
	if err != nil {
		repo.warn(ctx, "FetchByCuisine", err)

		matches := make([]*entity.Restaurant, 0)
		for _, restaurant := range SampleRestaurants() {
			if restaurant.HasCuisine(cuisine) {
				matches = append(matches, restaurant)
			}
		}

		return matches, nil
	}

	return restaurants, nil
}

// FetchByVibe retrieves active restaurants tagged with the vibe.
func (repo *fallbackCatalog) FetchByVibe(ctx context.Context, vibe entity.Vibe) ([]*entity.Restaurant, error) {
	restaurants, err := repo.delegate.FetchByVibe(ctx, vibe)
	if err != nil {
		repo.warn(ctx, "FetchByVibe", err)

		matches := make([]*entity.Restaurant, 0)
		for _, restaurant := range SampleRestaurants() {
			if restaurant.HasVibe(vibe) {
				matches = append(matches, restaurant)
			}
		}

		return matches, nil
	}

	return restaurants, nil
}

// FetchByID retrieves a single restaurant. A definitive not-found from the
// delegate is passed through; only transport failures fall back.
func (repo *fallbackCatalog) FetchByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurant, err := repo.delegate.FetchByID(ctx, id)
	if err == nil {
		return restaurant, nil
	}
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, err
	}

	repo.warn(ctx, "FetchByID", err)
	for _, sample := range SampleRestaurants() {
		if sample.ID == id {
			return sample, nil
		}
	}

	return nil, repository.ErrRestaurantNotFound
}

func (repo *fallbackCatalog) warn(ctx context.Context, op string, err error) {
	repo.logger.WarnContext(ctx, "catalog unreachable, serving sample data",
		slog.String("op", op),
		slog.Any("error", err))
}
