package usecase

import (
	"context"

	"bitefeed/internal/domain/entity"
)

// SavedUsecase defines the interface for a user's saved-restaurant set
type SavedUsecase interface {
	// ToggleSave flips the saved state of a restaurant for a user and
	// reports the resulting state: true when the restaurant is now saved.
	ToggleSave(ctx context.Context, userID string, restaurant *entity.Restaurant) (bool, error)

	// IsSaved reports the membership of a restaurant in the user's saved
	// set as last loaded. It never blocks on storage.
	IsSaved(userID, restaurantID string) bool

	// LoadSaved returns the user's saved restaurants, most recent first.
	LoadSaved(ctx context.Context, userID string) ([]entity.SavedRestaurant, error)
}
