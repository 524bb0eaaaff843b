// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"bitefeed/config"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// firebaseVerifier validates Firebase ID tokens issued by the hosted auth
// provider the mobile clients sign in against.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(ctx context.Context, cfg *config.Config) (service.TokenVerifier, error) {
	opts := []option.ClientOption{}
	if cfg.Firestore != nil && cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	var fbConfig *firebase.Config
	if cfg.Firestore != nil {
		fbConfig = &firebase.Config{ProjectID: cfg.Firestore.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify validates a Firebase ID token and extracts the caller identity.
func (s *firebaseVerifier) Verify(ctx context.Context, token string) (*service.Identity, error) {
	decoded, err := s.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{UserID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
