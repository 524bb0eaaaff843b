// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"strings"

	deliverycontext "bitefeed/internal/delivery/context"
	"bitefeed/internal/delivery/http/response"
	"bitefeed/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the caller identity on
// the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.identityFromRequest(c)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// OptionalAuthenticate resolves the identity when a token is present but
// lets anonymous requests through. Used on the feed routes: browsing never
// requires an account, only saving and booking do.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		identity, err := m.identityFromRequest(c)
		if err != nil {
			return err
		}

		c.Set(string(deliverycontext.KeyIdentity), identity)
		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func (m *AuthMiddleware) identityFromRequest(c echo.Context) (*service.Identity, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
	}

	identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
	if err != nil {
		return nil, response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired token")
	}

	return identity, nil
}

// IdentityFromEchoContext extracts the authenticated caller set by
// Authenticate. Returns nil for anonymous requests.
func IdentityFromEchoContext(c echo.Context) *service.Identity {
	if identity, ok := c.Get(string(deliverycontext.KeyIdentity)).(*service.Identity); ok {
		return identity
	}

	return nil
}
