package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcrypt_HashAndCheck(t *testing.T) {
	t.Parallel()

	h := Bcrypt{}
	stored, err := h.Hash("Abcdef12")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef12", stored)

	assert.True(t, h.Check(stored, "Abcdef12"))
	assert.False(t, h.Check(stored, "abcdef12"))
}

func TestPlaintext_CompatMode(t *testing.T) {
	t.Parallel()

	h := Plaintext{}
	stored, err := h.Hash("Abcdef12")
	require.NoError(t, err)
	assert.Equal(t, "Abcdef12", stored)

	assert.True(t, h.Check("Abcdef12", "Abcdef12"))
	assert.False(t, h.Check("Abcdef12", "other"))
}

func TestForMode(t *testing.T) {
	t.Parallel()

	assert.IsType(t, Plaintext{}, ForMode(true))
	assert.IsType(t, Bcrypt{}, ForMode(false))
}
