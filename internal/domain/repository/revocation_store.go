package repository

import (
	"context"
	"time"
)

// TokenRevocationStore records the jti of every token invalidated before its
// natural expiry. It is the only cross-request in-memory state in the system
// and must be safe for concurrent insertion and membership checks.
//
// The token's expiry is stored alongside the jti so implementations can
// prune entries that no longer matter: an expired token already fails
// signature validation, so keeping its jti buys nothing.
type TokenRevocationStore interface {
	// Revoke marks the jti as revoked until expiresAt. Idempotent.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error

	// IsRevoked reports whether the jti has been revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
