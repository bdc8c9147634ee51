package admin

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileTokenStore persists tokens as a JSON map of token to issue time (unix
// seconds) so admin sessions survive restarts.
type FileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(storagePath string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Join(storagePath, "admin_tokens.json")}
}

func (s *FileTokenStore) Save(token string, issuedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens := s.load()
	tokens[token] = issuedAt.Unix()
	return s.write(tokens)
}

func (s *FileTokenStore) IssuedAt(token string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec, ok := s.load()[token]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}

func (s *FileTokenStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens := s.load()
	if _, ok := tokens[token]; !ok {
		return nil
	}
	delete(tokens, token)
	return s.write(tokens)
}

func (s *FileTokenStore) Purge(cutoff time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tokens := s.load()
	changed := false
	for token, sec := range tokens {
		if time.Unix(sec, 0).Before(cutoff) {
			delete(tokens, token)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.write(tokens)
}

// load tolerates a missing or corrupt file by starting from an empty map.
func (s *FileTokenStore) load() map[string]int64 {
	tokens := make(map[string]int64)
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return tokens
	}
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return make(map[string]int64)
	}
	return tokens
}

func (s *FileTokenStore) write(tokens map[string]int64) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	raw, err := json.Marshal(tokens)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to save admin tokens: %w", err)
	}
	return nil
}
