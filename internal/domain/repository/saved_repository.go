package repository

import (
	"context"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/errors"
)

// ErrSavedUserMissing is returned when the user document backing the saved
// list does not exist.
var ErrSavedUserMissing = errors.New("user document not found")

// SavedStore persists a user's bookmarked restaurants. The backend keeps the
// whole list as one array on the user document, so writes replace the entire
// collection; callers must read-modify-write and serialize per user to avoid
// lost updates.
type SavedStore interface {
	// ReadAll returns the user's saved snapshots, most recently saved first.
	ReadAll(ctx context.Context, userID string) ([]entity.SavedRestaurant, error)

	// Write replaces the user's entire saved list.
	Write(ctx context.Context, userID string, saved []entity.SavedRestaurant) error
}
