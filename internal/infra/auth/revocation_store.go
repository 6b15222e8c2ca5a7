package auth

import (
	"context"
	"sync"
	"time"

	"github.com/oliviahealth/Careplan/internal/domain/repository"
)

// memoryRevocationStore is a process-wide, mutex-guarded revocation set for
// single-process deployments. Multi-process deployments would swap in an
// implementation backed by an external cache behind the same interface.
//
// Each entry carries the token's natural expiry; entries whose expiry has
// passed are pruned on insert, which keeps the set bounded by the number of
// sign-outs within one token validity window.
type memoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore is the constructor for memoryRevocationStore.
func NewMemoryRevocationStore() repository.TokenRevocationStore {
	return &memoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks the jti as revoked until expiresAt. Idempotent.
func (s *memoryRevocationStore) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, id)
		}
	}

	s.revoked[jti] = expiresAt

	return nil
}

// IsRevoked reports whether the jti has been revoked.
func (s *memoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.revoked[jti]

	return ok, nil
}
