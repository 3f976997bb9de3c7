package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/girlhub/storefront/internal/store"
)

func TestConverter_DefaultsToBase(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())
	assert.Equal(t, "GH", c.State().Code)
	assert.Equal(t, "₵150.00", c.Format(150))
}

func TestConverter_SetKnownCode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := New(store.NewMemory())

	require.True(t, c.Set(ctx, "NG"))
	assert.Equal(t, "₦15750.00", c.Format(150))

	require.True(t, c.Set(ctx, "US"))
	assert.Equal(t, "$9.00", c.Format(150))
}

func TestConverter_UnknownCodeIgnoredSilently(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := New(store.NewMemory())
	require.True(t, c.Set(ctx, "UK"))

	assert.False(t, c.Set(ctx, "EU"))
	assert.Equal(t, "UK", c.State().Code)
	assert.Equal(t, "£7.50", c.Format(150))
}

func TestConverter_RoundsToTwoDecimals(t *testing.T) {
	t.Parallel()

	c := New(store.NewMemory())
	require.True(t, c.Set(context.Background(), "US"))
	// 55 * 0.06 = 3.3
	assert.Equal(t, "$3.30", c.Format(55))
}

func TestConverter_PreferenceSurvivesRestart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.NewMemory()

	first := New(st)
	require.True(t, first.Set(ctx, "NG"))

	second := New(st)
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, "NG", second.State().Code)
	assert.Equal(t, 105.0, second.State().Rate)
}

func TestConverter_VisitedFlag(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := New(store.NewMemory())

	assert.False(t, c.Visited(ctx))
	require.NoError(t, c.MarkVisited(ctx))
	assert.True(t, c.Visited(ctx))
}
