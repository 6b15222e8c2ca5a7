// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher hashes credentials for storage and verifies sign-in
// attempts against the stored hash. The concrete algorithm lives in the
// infrastructure layer; domain code only ever sees opaque hash strings.
type PasswordHasher interface {
	// Hash derives a salted, one-way hash from the plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
