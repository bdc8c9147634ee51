package admin

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, store TokenStore) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService("admin", string(hash), 24*time.Hour, store)
}

func TestLoginIssuesToken(t *testing.T) {
	svc := newTestService(t, NewMemoryTokenStore())

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Len(t, token, 64)
	assert.True(t, svc.Verify(token))

	// Each login issues a distinct token and older ones stay valid.
	token2, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
	assert.True(t, svc.Verify(token))
	assert.True(t, svc.Verify(token2))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t, NewMemoryTokenStore())

	_, err := svc.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("root", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyRejectsUnknownAndEmpty(t *testing.T) {
	svc := newTestService(t, NewMemoryTokenStore())

	assert.False(t, svc.Verify(""))
	assert.False(t, svc.Verify("deadbeef"))
}

func TestVerifyExpiresToken(t *testing.T) {
	store := NewMemoryTokenStore()
	svc := newTestService(t, store)

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	// Move the clock past the session lifetime.
	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	assert.False(t, svc.Verify(token))

	// Expired tokens are deleted on verification.
	_, ok := store.IssuedAt(token)
	assert.False(t, ok)
}

// failingDeleteStore wraps a TokenStore so Delete always errors.
type failingDeleteStore struct {
	TokenStore
}

func (failingDeleteStore) Delete(string) error {
	return assert.AnError
}

func TestVerifyExpiresTokenDespiteDeleteError(t *testing.T) {
	svc := newTestService(t, failingDeleteStore{NewMemoryTokenStore()})

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	assert.False(t, svc.Verify(token))
}

func TestLogout(t *testing.T) {
	svc := newTestService(t, NewMemoryTokenStore())

	token, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	svc.Logout(token)
	assert.False(t, svc.Verify(token))

	// Logging out an unknown token is harmless.
	svc.Logout("no-such-token")
}

func TestLoginPurgesExpiredTokens(t *testing.T) {
	store := NewMemoryTokenStore()
	svc := newTestService(t, store)

	require.NoError(t, store.Save("stale", time.Now().Add(-48*time.Hour)))
	_, err := svc.Login("admin", "admin123")
	require.NoError(t, err)

	_, ok := store.IssuedAt("stale")
	assert.False(t, ok)
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	store := NewFileTokenStore(t.TempDir())

	issued := time.Now().Truncate(time.Second)
	require.NoError(t, store.Save("tok1", issued))

	got, ok := store.IssuedAt("tok1")
	require.True(t, ok)
	assert.Equal(t, issued.Unix(), got.Unix())

	require.NoError(t, store.Purge(issued.Add(time.Minute)))
	_, ok = store.IssuedAt("tok1")
	assert.False(t, ok)
}

func TestFileTokenStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store := NewFileTokenStore(dir)
	require.NoError(t, store.Save("tok1", time.Now()))

	reopened := NewFileTokenStore(dir)
	_, ok := reopened.IssuedAt("tok1")
	assert.True(t, ok)
}

func TestRedisTokenStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisTokenStore(client, time.Hour)

	issued := time.Now().Truncate(time.Second)
	require.NoError(t, store.Save("tok1", issued))

	got, ok := store.IssuedAt("tok1")
	require.True(t, ok)
	assert.Equal(t, issued.Unix(), got.Unix())

	// TTL expiry handles cleanup.
	mr.FastForward(2 * time.Hour)
	_, ok = store.IssuedAt("tok1")
	assert.False(t, ok)

	require.NoError(t, store.Save("tok2", issued))
	require.NoError(t, store.Delete("tok2"))
	_, ok = store.IssuedAt("tok2")
	assert.False(t, ok)
}
