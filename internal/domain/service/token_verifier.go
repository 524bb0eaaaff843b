package service

import "context"

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID string
	Email  string
}

// TokenVerifier validates a bearer token and extracts the caller identity.
// The auth provider itself is hosted; this project only verifies tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
