package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.March, 7, hour, minute, 0, 0, time.UTC)
	}
}

func point(lon, lat float64) *orb.Point {
	pt := orb.Point{lon, lat}

	return &pt
}

func testRestaurant(id, name string) *entity.Restaurant {
	return &entity.Restaurant{
		ID:             id,
		Name:           name,
		PrimaryCuisine: "American",
		Cuisines:       []string{"American"},
		Location:       "Dupont Circle",
		Description:    "Farm-to-table favorites",
		Rating:         4.2,
		IsActive:       true,
		Vibes:          []entity.Vibe{entity.VibeDining},
	}
}

// mockCatalogRepository is a hand-written test double for repository.CatalogRepository.
type mockCatalogRepository struct {
	mock.Mock
}

func (m *mockCatalogRepository) FetchActive(ctx context.Context) ([]*entity.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalogRepository) FetchByCuisine(ctx context.Context, cuisine string) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, cuisine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalogRepository) FetchByVibe(ctx context.Context, vibe entity.Vibe) ([]*entity.Restaurant, error) {
	args := m.Called(ctx, vibe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Restaurant), args.Error(1)
}

func (m *mockCatalogRepository) FetchByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Restaurant), args.Error(1)
}

// mockSavedStore is a hand-written test double for repository.SavedStore.
type mockSavedStore struct {
	mock.Mock
}

func (m *mockSavedStore) ReadAll(ctx context.Context, userID string) ([]entity.SavedRestaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.SavedRestaurant), args.Error(1)
}

func (m *mockSavedStore) Write(ctx context.Context, userID string, saved []entity.SavedRestaurant) error {
	args := m.Called(ctx, userID, saved)

	return args.Error(0)
}

// mockBookingRepository is a hand-written test double for repository.BookingRepository.
type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *entity.Booking) (string, error) {
	args := m.Called(ctx, booking)

	return args.String(0), args.Error(1)
}

func (m *mockBookingRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Booking), args.Error(1)
}

var _ repository.CatalogRepository = (*mockCatalogRepository)(nil)
var _ repository.SavedStore = (*mockSavedStore)(nil)
var _ repository.BookingRepository = (*mockBookingRepository)(nil)
