// Package hash abstracts password storage. The original storefront kept
// passwords in plaintext; that behavior survives only behind an explicit
// compatibility switch, bcrypt is the default.
package hash

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

type Hasher interface {
	Hash(password string) (string, error)
	Check(stored, password string) bool
}

// Bcrypt hashes with a per-password salt at the default cost.
type Bcrypt struct{}

func (Bcrypt) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (Bcrypt) Check(stored, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// Plaintext reproduces the legacy storage format. Only for data
// compatibility with stores written by the original client.
type Plaintext struct{}

func (Plaintext) Hash(password string) (string, error) { return password, nil }

func (Plaintext) Check(stored, password string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// ForMode picks the hasher for the configured mode.
func ForMode(plaintextCompat bool) Hasher {
	if plaintextCompat {
		return Plaintext{}
	}
	return Bcrypt{}
}
