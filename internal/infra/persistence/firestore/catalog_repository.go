package firestore

import (
	"context"
	"log/slog"
	"time"

	"bitefeed/config"
	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const defaultFetchTimeout = 3 * time.Second

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	client       *firestore.Client
	logger       *slog.Logger
	fetchTimeout time.Duration
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(client *firestore.Client, cfg *config.Config, logger *slog.Logger) repository.CatalogRepository {
	fetchTimeout := defaultFetchTimeout
	if cfg.Catalog != nil && cfg.Catalog.FetchTimeout > 0 {
		fetchTimeout = cfg.Catalog.FetchTimeout
	}

	return &catalogRepository{
		client:       client,
		logger:       logger,
		fetchTimeout: fetchTimeout,
	}
}

// FetchActive retrieves the full active catalog.
func (repo *catalogRepository) FetchActive(ctx context.Context) ([]*entity.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.fetchTimeout)
	defer cancel()

	query := repo.client.Collection(restaurantsCollection).
		Where("isActive", "==", true)

	return repo.collect(ctx, query.Documents(ctx))
}

// FetchByCuisine retrieves active restaurants matching the cuisine. The
// backend cannot express "primary equals OR array contains" in one query,
// so primary matches come first and a second full scan unions in the
// fusion matches without duplicating IDs.
func (repo *catalogRepository) FetchByCuisine(ctx context.Context, cuisine string) ([]*entity.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.fetchTimeout)
	defer cancel()

	primaryQuery := repo.client.Collection(restaurantsCollection).
		Where("isActive", "==", true).
		Where("cuisine", "==", cuisine)

	primary, err := repo.collect(ctx, primaryQuery.Documents(ctx))
	if err != nil {
		return nil, err
	}

	allQuery := repo.client.Collection(restaurantsCollection).
		Where("isActive", "==", true)

	all, err := repo.collect(ctx, allQuery.Documents(ctx))
	if err != nil {
		return nil, err
	}

	return unionByCuisine(primary, all, cuisine), nil
}

// unionByCuisine merges the primary-cuisine matches with the cuisines-array
// matches from the full scan. Primary results keep their order and seed the
// seen set, so a restaurant returned by both queries appears exactly once.
func unionByCuisine(primary, all []*entity.Restaurant, cuisine string) []*entity.Restaurant {
	restaurants := make([]*entity.Restaurant, 0, len(primary))
	seen := make(map[string]struct{}, len(primary))
	for _, restaurant := range primary {
		restaurants = append(restaurants, restaurant)
		seen[restaurant.ID] = struct{}{}
	}

	for _, restaurant := range all {
		if _, ok := seen[restaurant.ID]; ok {
			continue
		}
		if restaurant.HasCuisine(cuisine) {
			restaurants = append(restaurants, restaurant)
			seen[restaurant.ID] = struct{}{}
		}
	}

	return restaurants
}

// FetchByVibe retrieves active restaurants tagged with the vibe. Dining
// means the whole active catalog.
func (repo *catalogRepository) FetchByVibe(ctx context.Context, vibe entity.Vibe) ([]*entity.Restaurant, error) {
	if vibe == entity.VibeDining {
		return repo.FetchActive(ctx)
	}

	ctx, cancel := context.WithTimeout(ctx, repo.fetchTimeout)
	defer cancel()

	query := repo.client.Collection(restaurantsCollection).
		Where("isActive", "==", true).
		Where("vibes", "array-contains", string(vibe))

	return repo.collect(ctx, query.Documents(ctx))
}

// FetchByID retrieves a single restaurant, active or not.
func (repo *catalogRepository) FetchByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.fetchTimeout)
	defer cancel()

	doc, err := repo.client.Collection(restaurantsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, catalogError(err)
	}

	var restaurantM model.RestaurantModel
	if err := doc.DataTo(&restaurantM); err != nil {
		return nil, errors.Wrap(err, "failed to decode restaurant document")
	}
	if err := restaurantM.Validate(); err != nil {
		return nil, errors.Wrap(repository.ErrRestaurantNotFound, err.Error())
	}

	return model.ToRestaurantDomain(doc.Ref.ID, &restaurantM), nil
}

// collect drains a document iterator into domain entities. Documents that
// fail decoding or validation are skipped with a warning so one bad record
// never empties the feed.
func (repo *catalogRepository) collect(ctx context.Context, docs *firestore.DocumentIterator) ([]*entity.Restaurant, error) {
	defer docs.Stop()

	restaurants := make([]*entity.Restaurant, 0)
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, catalogError(err)
		}

		var restaurantM model.RestaurantModel
		if err := doc.DataTo(&restaurantM); err != nil {
			repo.logger.WarnContext(ctx, "skipping undecodable restaurant document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err))

			continue
		}
		if err := restaurantM.Validate(); err != nil {
			repo.logger.WarnContext(ctx, "skipping incomplete restaurant document",
				slog.String("id", doc.Ref.ID),
				slog.Any("error", err))

			continue
		}

		restaurants = append(restaurants, model.ToRestaurantDomain(doc.Ref.ID, &restaurantM))
	}

	return restaurants, nil
}

// catalogError maps transport failures onto ErrCatalogUnavailable so
// callers can recognize an unreachable backend.
func catalogError(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Wrap(repository.ErrCatalogUnavailable, err.Error())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(repository.ErrCatalogUnavailable, err.Error())
	}

	return errors.Wrap(err, "firestore query failed")
}
