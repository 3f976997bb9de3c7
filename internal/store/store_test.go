package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetRemove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, KeyCart, `[{"id":1,"quantity":2}]`))

	v, ok, err := m.Get(ctx, KeyCart)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, v)

	require.NoError(t, m.Remove(ctx, KeyCart))
	_, ok, err = m.Get(ctx, KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetJSON_MissingKey(t *testing.T) {
	t.Parallel()

	var dest []int
	ok, err := GetJSON(context.Background(), NewMemory(), KeyUsers, &dest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, dest)
}

func TestGetJSON_CorruptValueTreatedAsAbsent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, KeyCart, `{broken json`))

	var dest []int
	ok, err := GetJSON(ctx, m, KeyCart, &dest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetJSON_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	type pair struct {
		A string `json:"a"`
		B int    `json:"b"`
	}
	in := pair{A: "x", B: 7}
	require.NoError(t, SetJSON(ctx, m, KeySettings, in))

	var out pair
	ok, err := GetJSON(ctx, m, KeySettings, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}
