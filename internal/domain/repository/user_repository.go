// Package repository defines the persistence interfaces the domain depends
// on. Concrete implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/oliviahealth/Careplan/internal/domain/entity"
	"github.com/oliviahealth/Careplan/internal/errors"
)

// Sentinel errors returned by repositories. Use cases translate these into
// the domain error taxonomy.
var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when creating an account whose email is
	// already stored (case-sensitive exact match).
	ErrEmailTaken = errors.New("email already taken")

	// ErrRecordNotFound covers both a nonexistent record and a record owned
	// by a different account; callers must not be able to tell them apart.
	ErrRecordNotFound = errors.New("record not found")
)

// UserRepository is the persistence contract for caregiver/client accounts.
type UserRepository interface {
	// Create persists a new account. Fails with ErrEmailTaken when the
	// email is already present.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves an account by its exact stored email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists changes to an existing account.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the account row. Owned records are removed separately,
	// inside the same transaction, by the use case layer.
	Delete(ctx context.Context, id uuid.UUID) error
}
