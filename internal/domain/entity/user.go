// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the caregiver/client account that owns every clinical record in
// the system. Email doubles as the login identifier and is unique,
// matched exactly as stored.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Name         string    // The user's display name or real name.
	Email        string    // The login email, unique across accounts.
	PasswordHash string    // Stores the bcrypt-hashed password. Never the plaintext.
	DateCreated  time.Time // Timestamp of when this account was created.
}
