// Package firestore contains the concrete implementation of the persistence
// layer backed by Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"bitefeed/config"
	"bitefeed/internal/errors"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Collection names in the hosted project.
const (
	restaurantsCollection = "restaurants"
	usersCollection       = "users"
	bookingsCollection    = "bookings"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Firestore client mapping
func New(params Params) (*firestore.Client, error) {
	if params.Config.Firestore == nil {
		return nil, errors.New("firestore is not configured")
	}

	opts := []option.ClientOption{}
	if path := params.Config.Firestore.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	client, err := firestore.NewClient(context.Background(), params.Config.Firestore.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
