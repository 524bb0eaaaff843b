package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bitefeed/config"
	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) FetchActive(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalog) FetchByCuisine(ctx context.Context, cuisine string) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalog) FetchByVibe(ctx context.Context, vibe entity.Vibe) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, vibe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalog) FetchByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

func newFallbackForTest(delegate repository.CatalogRepository) repository.CatalogRepository {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return WithFallback(delegate, &config.Config{}, logger)
}

func TestWithFallback_DisabledReturnsDelegate(t *testing.T) {
	delegate := new(mockCatalog)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Catalog: &config.CatalogConfig{FallbackEnabled: false}}

	wrapped := WithFallback(delegate, cfg, logger)
	assert.Same(t, repository.CatalogRepository(delegate), wrapped)
}

func TestFallbackCatalog_PassesThroughLiveData(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	live := []*entity.Restaurant{{ID: "live-1", Name: "Live One"}}
	delegate.On("FetchActive", ctx).Return(live, nil)

	restaurants, err := wrapped.FetchActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, live, restaurants)
}

func TestFallbackCatalog_ServesSamplesOnError(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	delegate.On("FetchActive", ctx).Return(nil, repository.ErrCatalogUnavailable)

	restaurants, err := wrapped.FetchActive(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 4)
	assert.Equal(t, "Sage Bistro", restaurants[0].Name)
}

func TestFallbackCatalog_CuisineFilterOnSamples(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	delegate.On("FetchByCuisine", ctx, "Mediterranean").
		Return(nil, repository.ErrCatalogUnavailable)

	restaurants, err := wrapped.FetchByCuisine(ctx, "Mediterranean")
	require.NoError(t, err)

	// Sage Bistro and Le Petit Bistro list Mediterranean in their
	// cuisines array.
	ids := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"1", "4"}, ids)
}

func TestFallbackCatalog_VibeFilterOnSamples(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	delegate.On("FetchByVibe", ctx, entity.VibeBrunch).
		Return(nil, repository.ErrCatalogUnavailable)

	restaurants, err := wrapped.FetchByVibe(ctx, entity.VibeBrunch)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, "Sage Bistro", restaurants[0].Name)
	assert.Equal(t, "Le Petit Bistro", restaurants[1].Name)
}

func TestFallbackCatalog_NotFoundPassesThrough(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	delegate.On("FetchByID", ctx, "missing").Return(nil, repository.ErrRestaurantNotFound)

	restaurant, err := wrapped.FetchByID(ctx, "missing")
	assert.Nil(t, restaurant)
	assert.ErrorIs(t, err, repository.ErrRestaurantNotFound)
}

func TestFallbackCatalog_FetchByIDFallsBackOnTransportError(t *testing.T) {
	delegate := new(mockCatalog)
	wrapped := newFallbackForTest(delegate)

	ctx := context.Background()
	delegate.On("FetchByID", ctx, "2").Return(nil, repository.ErrCatalogUnavailable)

	restaurant, err := wrapped.FetchByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Ramen House", restaurant.Name)
}
