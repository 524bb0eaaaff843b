package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// FeedUsecase defines the interface for composing discovery feeds
type FeedUsecase interface {
	// Compose builds the ordered feed for one query: fetch, theme filter,
	// distance annotation, then nearest-first sort.
	Compose(ctx context.Context, query entity.FeedQuery) (*entity.FeedResult, error)

	// GetRestaurant returns a single restaurant by its identifier.
	GetRestaurant(ctx context.Context, id string) (*entity.Restaurant, error)
}
