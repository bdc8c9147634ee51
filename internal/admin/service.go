package admin

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service authenticates the single configured admin user and manages opaque
// session tokens.
type Service struct {
	username     string
	passwordHash string
	sessionTTL   time.Duration
	tokens       TokenStore
	now          func() time.Time
}

func NewService(username, passwordHash string, sessionTTL time.Duration, tokens TokenStore) *Service {
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		sessionTTL:   sessionTTL,
		tokens:       tokens,
		now:          time.Now,
	}
}

// Login verifies credentials and issues a fresh 64-hex-char session token.
// Expired tokens are purged opportunistically on every successful login.
func (s *Service) Login(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(b)

	now := s.now()
	if err := s.tokens.Purge(now.Add(-s.sessionTTL)); err != nil {
		log.Printf("⚠️ Failed to purge expired admin tokens: %v", err)
	}
	if err := s.tokens.Save(token, now); err != nil {
		return "", fmt.Errorf("failed to save session token: %w", err)
	}
	return token, nil
}

// Verify reports whether a token is known and within the session lifetime.
// An expired token is deleted on sight.
func (s *Service) Verify(token string) bool {
	if token == "" {
		return false
	}
	issuedAt, ok := s.tokens.IssuedAt(token)
	if !ok {
		return false
	}
	if s.now().Sub(issuedAt) > s.sessionTTL {
		if err := s.tokens.Delete(token); err != nil {
			log.Printf("⚠️ Failed to delete expired admin token: %v", err)
		}
		return false
	}
	return true
}

// Logout invalidates a token. Unknown tokens are not an error.
func (s *Service) Logout(token string) {
	if err := s.tokens.Delete(token); err != nil {
		log.Printf("⚠️ Failed to delete admin token: %v", err)
	}
}

// Username returns the configured admin username.
func (s *Service) Username() string {
	return s.username
}
