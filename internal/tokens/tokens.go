package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims is what gets persisted under the session key: the signed
// marker of the currently authenticated user.
type SessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// NewSessionToken signs a session marker for the given user. Subject is the
// user's email, the JTI makes every login distinguishable.
func NewSessionToken(secret []byte, name, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

// SessionClaimsFromToken verifies signature and expiry. Any failure means
// the persisted marker is stale or tampered with and the caller should
// treat the session as absent.
func SessionClaimsFromToken(tokenStr string, secret []byte) (*SessionClaims, error) {
	var claims SessionClaims
	tkn, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected sign method")
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
