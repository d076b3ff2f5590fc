// File: internal/auth/blocklist.go
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// TokenBlocklistService records identity tokens revoked by logout until they
// would have expired on their own.
type TokenBlocklistService interface {
	// AddToBlocklist revokes a token id until its natural expiry.
	AddToBlocklist(ctx context.Context, tokenID string, expiresAt time.Time) error
	// IsBlocklisted checks whether a token id has been revoked.
	IsBlocklisted(ctx context.Context, tokenID string) (bool, error)
}

// InMemoryBlocklistService is an in-memory implementation of
// TokenBlocklistService using a cache.
type InMemoryBlocklistService struct {
	mu    sync.RWMutex
	cache *cache.Cache
}

// InMemoryBlocklistConfig holds the configuration for the InMemoryBlocklistService.
type InMemoryBlocklistConfig struct {
	DefaultExpiration time.Duration
	CleanupInterval   time.Duration
}

// NewInMemoryBlocklistService creates a new in-memory blocklist service.
func NewInMemoryBlocklistService(cfg InMemoryBlocklistConfig) *InMemoryBlocklistService {
	return &InMemoryBlocklistService{
		cache: cache.New(cfg.DefaultExpiration, cfg.CleanupInterval),
	}
}

// AddToBlocklist adds a token id to the in-memory cache. The entry is kept
// for exactly the remaining lifetime of the token; already-expired tokens
// are not stored at all.
func (s *InMemoryBlocklistService) AddToBlocklist(ctx context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	duration := time.Until(expiresAt)
	if duration <= 0 {
		return nil
	}

	s.cache.Set(tokenID, true, duration)
	return nil
}

// IsBlocklisted checks if a token id exists in the in-memory cache.
func (s *InMemoryBlocklistService) IsBlocklisted(ctx context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, found := s.cache.Get(tokenID)
	return found, nil
}
