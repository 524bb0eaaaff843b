package auth

import (
	"context"

	"bitefeed/config"
	"bitefeed/internal/domain/service"
	"bitefeed/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// staticVerifier validates HS256 tokens signed with a shared secret. Used
// for local development and tests, where no hosted auth project exists.
type staticVerifier struct {
	secret string
}

// NewStaticVerifier is the constructor for staticVerifier.
func NewStaticVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Auth == nil || cfg.Auth.StaticSecret == "" {
		return nil, errors.New("static auth secret must be provided")
	}

	return &staticVerifier{secret: cfg.Auth.StaticSecret}, nil
}

// Verify validates the token signature and extracts the caller identity
// from the sub and email claims.
func (s *staticVerifier) Verify(_ context.Context, tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, errors.New("token missing subject")
	}

	identity := &service.Identity{UserID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}
