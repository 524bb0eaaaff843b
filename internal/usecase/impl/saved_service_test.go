package impl

import (
	"context"
	"testing"
	"time"

	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavedService_ToggleSaveAdds(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	restaurant := testRestaurant("r1", "Sage Bistro")
	restaurant.Vibes = append(restaurant.Vibes, entity.VibeHappyHour)
	restaurant.DiscountPercentage = 20
	restaurant.HappyHourDeal = "2-for-1 cocktails"

	mockStore.On("ReadAll", ctx, "user-1").Return([]entity.SavedRestaurant{}, nil)
	mockStore.On("Write", ctx, "user-1", mock.MatchedBy(func(saved []entity.SavedRestaurant) bool {
		return len(saved) == 1 && saved[0].ID == "r1"
	})).Return(nil)

	saved, err := service.ToggleSave(ctx, "user-1", restaurant)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, service.IsSaved("user-1", "r1"))
	mockStore.AssertExpectations(t)
}

func TestSavedService_ToggleSaveSnapshotFields(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	restaurant := testRestaurant("r1", "Sage Bistro")
	restaurant.Vibes = append(restaurant.Vibes, entity.VibeHappyHour)
	restaurant.DiscountPercentage = 20
	restaurant.HappyHourDeal = "2-for-1 cocktails"

	var written []entity.SavedRestaurant
	mockStore.On("ReadAll", ctx, "user-1").Return([]entity.SavedRestaurant{}, nil)
	mockStore.On("Write", ctx, "user-1", mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]entity.SavedRestaurant)
		}).
		Return(nil)

	_, err := service.ToggleSave(ctx, "user-1", restaurant)
	require.NoError(t, err)

	require.Len(t, written, 1)
	snapshot := written[0]
	assert.Equal(t, "Sage Bistro", snapshot.Name)
	assert.Equal(t, []string{"Happy Hour"}, snapshot.Offers)
	assert.Equal(t, []string{"2-for-1 cocktails"}, snapshot.HappyHourDeals)
	require.NotNil(t, snapshot.DiscountPercentage)
	assert.Equal(t, 20, *snapshot.DiscountPercentage)
	assert.True(t, snapshot.IsFavorite)
	assert.False(t, snapshot.SavedAt.IsZero())
}

func TestSavedService_ToggleSaveRemoves(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	restaurant := testRestaurant("r1", "Sage Bistro")
	existing := []entity.SavedRestaurant{
		{ID: "r1", Name: "Sage Bistro", SavedAt: time.Now()},
		{ID: "r2", Name: "Ramen House", SavedAt: time.Now()},
	}

	mockStore.On("ReadAll", ctx, "user-1").Return(existing, nil)
	mockStore.On("Write", ctx, "user-1", mock.MatchedBy(func(saved []entity.SavedRestaurant) bool {
		return len(saved) == 1 && saved[0].ID == "r2"
	})).Return(nil)

	saved, err := service.ToggleSave(ctx, "user-1", restaurant)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, service.IsSaved("user-1", "r1"))
	assert.True(t, service.IsSaved("user-1", "r2"))
}

func TestSavedService_ToggleSaveRequiresUser(t *testing.T) {
	service := NewSavedService(new(mockSavedStore), newDiscardLogger())

	_, err := service.ToggleSave(context.Background(), "", testRestaurant("r1", "Sage Bistro"))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestSavedService_ToggleSaveWriteFailureKeepsState(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.On("ReadAll", ctx, "user-1").Return([]entity.SavedRestaurant{}, nil)
	mockStore.On("Write", ctx, "user-1", mock.Anything).Return(assert.AnError)

	_, err := service.ToggleSave(ctx, "user-1", testRestaurant("r1", "Sage Bistro"))
	assert.ErrorIs(t, err, domainerrors.ErrSavedStoreFailed)
	assert.False(t, service.IsSaved("user-1", "r1"))
}

func TestSavedService_LoadSavedPrimesMembership(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.On("ReadAll", ctx, "user-1").Return([]entity.SavedRestaurant{
		{ID: "r1", Name: "Sage Bistro"},
	}, nil)

	saved, err := service.LoadSaved(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
	assert.True(t, service.IsSaved("user-1", "r1"))
	assert.False(t, service.IsSaved("user-1", "r2"))
	assert.False(t, service.IsSaved("user-2", "r1"))
}

func TestSavedService_MissingUserDocument(t *testing.T) {
	mockStore := new(mockSavedStore)
	service := NewSavedService(mockStore, newDiscardLogger())

	ctx := context.Background()
	mockStore.On("ReadAll", ctx, "new-user").Return(nil, repository.ErrSavedUserMissing)
	mockStore.On("Write", ctx, "new-user", mock.MatchedBy(func(saved []entity.SavedRestaurant) bool {
		return len(saved) == 1 && saved[0].ID == "r1"
	})).Return(nil)

	// The first toggle of a brand-new user creates the document.
	saved, err := service.ToggleSave(ctx, "new-user", testRestaurant("r1", "Sage Bistro"))
	require.NoError(t, err)
	assert.True(t, saved)

	list, err := service.LoadSaved(ctx, "new-user")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSavedService_IsSavedUnloadedUser(t *testing.T) {
	service := NewSavedService(new(mockSavedStore), newDiscardLogger())

	assert.False(t, service.IsSaved("ghost", "r1"))
}
