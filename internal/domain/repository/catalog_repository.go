// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/errors"
)

// Domain-specific errors for catalog access.
var (
	// ErrRestaurantNotFound is returned when a restaurant is not found.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrCatalogUnavailable is returned when the catalog backend cannot be reached.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// CatalogRepository is the read boundary to the hosted restaurant catalog.
// Every fetch returns only active restaurants; inactive records never leave
// this layer. All methods may fail with ErrCatalogUnavailable, and callers
// must have a defined fallback.
type CatalogRepository interface {
	// FetchActive retrieves the full active catalog.
	FetchActive(ctx context.Context) ([]*entity.Restaurant, error)

	// FetchByCuisine retrieves active restaurants whose primary cuisine
	// matches exactly, unioned with those listing the cuisine in their
	// cuisines array. The union contains no duplicate IDs and preserves
	// primary-match-first order.
	FetchByCuisine(ctx context.Context, cuisine string) ([]*entity.Restaurant, error)

	// FetchByVibe retrieves active restaurants tagged with the vibe.
	// The dining vibe is equivalent to FetchActive.
	FetchByVibe(ctx context.Context, vibe entity.Vibe) ([]*entity.Restaurant, error)

	// FetchByID retrieves a single restaurant, active or not.
	// Returns ErrRestaurantNotFound when no such document exists.
	FetchByID(ctx context.Context, id string) (*entity.Restaurant, error)
}
