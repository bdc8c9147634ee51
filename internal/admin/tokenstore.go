package admin

import (
	"sync"
	"time"
)

// TokenStore persists issued admin session tokens. Implementations must be
// safe for concurrent use.
type TokenStore interface {
	Save(token string, issuedAt time.Time) error
	IssuedAt(token string) (time.Time, bool)
	Delete(token string) error
	// Purge drops every token issued before the cutoff.
	Purge(cutoff time.Time) error
}

// MemoryTokenStore keeps tokens in process memory. Sessions do not survive a
// restart, which matches single-instance deployments.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]time.Time
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]time.Time)}
}

func (s *MemoryTokenStore) Save(token string, issuedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = issuedAt
	return nil
}

func (s *MemoryTokenStore) IssuedAt(token string) (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.tokens[token]
	return at, ok
}

func (s *MemoryTokenStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

func (s *MemoryTokenStore) Purge(cutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, at := range s.tokens {
		if at.Before(cutoff) {
			delete(s.tokens, token)
		}
	}
	return nil
}
