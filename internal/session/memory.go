package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process memory. The default configuration
// never expires entries; an optional TTL evicts abandoned dialogues.
type MemoryStore struct {
	cache *gocache.Cache
}

// NewMemoryStore constructs an in-process store. ttl <= 0 disables expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	expiration := gocache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &MemoryStore{cache: gocache.New(expiration, cleanup)}
}

// Get returns a copy of the stored session, or (nil, nil) when absent.
func (m *MemoryStore) Get(_ context.Context, userID string) (*Session, error) {
	v, ok := m.cache.Get(userID)
	if !ok {
		return nil, nil
	}
	s := v.(Session)
	return &s, nil
}

// Save stores a copy of the session, overwriting any existing one.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.cache.Set(s.UserID, *s, gocache.DefaultExpiration)
	return nil
}

// Delete removes the user's session. Deleting an absent session is a no-op.
func (m *MemoryStore) Delete(_ context.Context, userID string) error {
	m.cache.Delete(userID)
	return nil
}
