// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput defines the data required to authenticate.
type SignInInput struct {
	Email    string
	Password string
}

// UpdateAccountInput carries the replacement profile values. All three
// fields are required; updates are full replacements, not patches.
type UpdateAccountInput struct {
	UserID   uuid.UUID
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the account plus a freshly issued access token.
type SessionOutput struct {
	User        *entity.User
	AccessToken string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp creates an account and signs it in, returning a fresh token.
	SignUp(ctx context.Context, input SignUpInput) (*SessionOutput, error)

	// SignIn verifies credentials and returns a fresh token.
	SignIn(ctx context.Context, input SignInInput) (*SessionOutput, error)

	// SignOut revokes the presented token's jti for the remainder of its
	// validity window.
	SignOut(ctx context.Context, jti string, expiresAt time.Time) error

	// GetAccount returns the account's profile.
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateAccount replaces the account's profile fields, rehashing the
	// password.
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*entity.User, error)

	// DeleteAccount removes the account and every clinical record it owns,
	// atomically.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
