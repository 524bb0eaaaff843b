package firestore

import (
	"context"
	"sort"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// savedStore implements the repository.SavedStore interface. The saved list
// lives as one array field on the user document, matching the mobile
// client's schema, so reads return the whole list and writes replace it.
type savedStore struct {
	client *firestore.Client
}

// NewSavedStore is the constructor for savedStore.
func NewSavedStore(client *firestore.Client) repository.SavedStore {
	return &savedStore{client: client}
}

// ReadAll returns the user's saved snapshots, most recently saved first.
func (repo *savedStore) ReadAll(ctx context.Context, userID string) ([]entity.SavedRestaurant, error) {
	doc, err := repo.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrSavedUserMissing
		}

		return nil, errors.Wrap(err, "failed to read user document")
	}

	var userM model.UserModel
	if err := doc.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	saved := model.ToSavedDomain(userM.SavedRestaurants)
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].SavedAt.After(saved[j].SavedAt)
	})

	return saved, nil
}

// Write replaces the user's entire saved list.
func (repo *savedStore) Write(ctx context.Context, userID string, saved []entity.SavedRestaurant) error {
	_, err := repo.client.Collection(usersCollection).Doc(userID).Set(ctx, map[string]any{
		"savedRestaurants": model.FromSavedDomain(saved),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to write saved restaurants")
	}

	return nil
}
