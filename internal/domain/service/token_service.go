package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of an access token: who it was issued to
// and which unique token it is.
type Claims struct {
	UserID    uuid.UUID // The account the token asserts.
	TokenID   string    // The jti, keyed by the revocation set.
	ExpiresAt time.Time // The token's natural expiry.
}

// TokenService defines the interface for issuing and validating access
// tokens. There is no refresh flow: once a token expires or is revoked, the
// caller re-authenticates.
type TokenService interface {
	// Issue creates a signed token asserting userID, with a fresh jti and
	// a fixed validity window.
	Issue(userID uuid.UUID) (token string, claims *Claims, err error)

	// Validate checks signature and expiry and returns the token's claims.
	// Revocation is checked separately against the TokenRevocationStore.
	Validate(token string) (*Claims, error)
}
