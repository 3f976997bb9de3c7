package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-session-secret")
	token, err := NewSessionToken(secret, "Debbie", "debbie@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := SessionClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "Debbie", claims.Name)
	assert.Equal(t, "debbie@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestSessionToken_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	token, err := NewSessionToken([]byte("secret-a"), "x", "x@example.com", time.Hour)
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(token, []byte("secret-b"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_ExpiredRejected(t *testing.T) {
	t.Parallel()

	secret := []byte("test-session-secret")
	token, err := NewSessionToken(secret, "x", "x@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_GarbageRejected(t *testing.T) {
	t.Parallel()

	_, err := SessionClaimsFromToken("not-a-jwt", []byte("secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
