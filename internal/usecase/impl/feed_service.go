package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "bitefeed/internal/delivery/context"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/geo"
	"bitefeed/internal/usecase"

	"github.com/pkg/errors"
)

// ErrUnknownVibe is returned when a feed query names a vibe outside the
// known set.
var ErrUnknownVibe = errors.New("unknown vibe")

// feedService implements the FeedUsecase interface.
type feedService struct {
	catalog repository.CatalogRepository
	themes  *ThemeMatcher
	logger  *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(
	catalog repository.CatalogRepository,
	themes *ThemeMatcher,
	logger *slog.Logger,
) usecase.FeedUsecase {
	return &feedService{
		catalog: catalog,
		themes:  themes,
		logger:  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Compose builds the feed for one query. Restaurants are fetched for the
// vibe (and cuisine, for dining), filtered by theme, annotated with the
// distance from the query origin, then stably sorted nearest first.
// Restaurants without coordinates keep their fetch order after all ranked
// ones.
func (srv *feedService) Compose(ctx context.Context, query entity.FeedQuery) (*entity.FeedResult, error) {
	if query.Vibe == "" {
		query.Vibe = entity.VibeDining
	}
	if !query.Vibe.Valid() {
		return nil, ErrUnknownVibe
	}

	restaurants, err := srv.fetch(ctx, query)
	if err != nil {
		// Only reachable when the fallback catalog is disabled; clients
		// then see the catalog outage instead of a generic failure.
		if errors.Is(err, repository.ErrCatalogUnavailable) {
			return nil, errors.Wrap(domainerrors.ErrCatalogUnavailable, err.Error())
		}

		return nil, errors.Wrap(err, "failed to fetch restaurants")
	}

	items := make([]entity.FeedItem, 0, len(restaurants))
	for _, restaurant := range restaurants {
		if !srv.themes.Matches(restaurant, query.Vibe, query.Theme) {
			continue
		}

		item := entity.FeedItem{Restaurant: restaurant}
		if query.Origin != nil && restaurant.Coordinates != nil {
			distance := geo.MilesBetween(*query.Origin, *restaurant.Coordinates)
			item.DistanceMiles = &distance
		}
		items = append(items, item)
	}

	if query.Origin != nil {
		sortNearestFirst(items)
	}

	srv.log(ctx).Debug("feed composed",
		slog.String("vibe", string(query.Vibe)),
		slog.String("theme", query.Theme),
		slog.Int("count", len(items)))

	return &entity.FeedResult{Query: query, Items: items}, nil
}

// GetRestaurant retrieves a single restaurant by ID.
func (srv *feedService) GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error) {
	restaurant, err := srv.catalog.FetchByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "restaurant not found")
		}

		return nil, errors.Wrap(err, "failed to fetch restaurant")
	}

	return restaurant, nil
}

func (srv *feedService) fetch(ctx context.Context, query entity.FeedQuery) ([]*entity.Restaurant, error) {
	if query.Vibe != entity.VibeDining {
		return srv.catalog.FetchByVibe(ctx, query.Vibe)
	}
	if query.Cuisine != "" && query.Cuisine != entity.ThemeAll {
		return srv.catalog.FetchByCuisine(ctx, query.Cuisine)
	}

	return srv.catalog.FetchActive(ctx)
}

// sortNearestFirst orders items by ascending distance. Items without a
// distance sort after every ranked item; the sort is stable so ties and
// unranked items keep their fetch order.
func sortNearestFirst(items []entity.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].DistanceMiles, items[j].DistanceMiles
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}

		return *di < *dj
	})
}
