// Package middleware contains HTTP-specific middleware for the Echo server.
package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "github.com/oliviahealth/Careplan/internal/delivery/context"
	domainerrors "github.com/oliviahealth/Careplan/internal/domain/errors"
	"github.com/oliviahealth/Careplan/internal/domain/repository"
	"github.com/oliviahealth/Careplan/internal/domain/service"
)

// AuthMiddleware validates the bearer token on protected routes. A token
// passes only when its signature and expiry check out and its jti has not
// been revoked by a sign-out.
type AuthMiddleware struct {
	tokenSvc        service.TokenService
	revocationStore repository.TokenRevocationStore
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, revocationStore repository.TokenRevocationStore) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, revocationStore: revocationStore}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		revoked, err := m.revocationStore.IsRevoked(c.Request().Context(), claims.TokenID)
		if err != nil {
			return domainerrors.NewStorageError(err, "failed to check token revocation")
		}
		if revoked {
			return domainerrors.ErrUnauthenticated
		}

		// Set identity on the context for handlers to use.
		deliverycontext.SetUserID(c, claims.UserID)
		deliverycontext.SetTokenID(c, claims.TokenID)
		deliverycontext.SetTokenExpiry(c, claims.ExpiresAt)

		return next(c)
	}
}
