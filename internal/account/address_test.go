package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(label string) Address {
	return Address{
		Label:  label,
		Name:   testName,
		Phone:  "+233201234567",
		Street: "12 Oxford St",
		City:   "Accra",
		Region: "Greater Accra",
	}
}

func addAddress(t *testing.T, svc *Service, label string) *Address {
	t.Helper()
	a, err := svc.AddAddress(context.Background(), testAddress(label))
	require.NoError(t, err)
	return a
}

func defaultCount(t *testing.T, svc *Service) int {
	t.Helper()
	addrs, err := svc.Addresses(context.Background())
	require.NoError(t, err)
	n := 0
	for _, a := range addrs {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddresses_RequireSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, Config{})

	_, err := svc.Addresses(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = svc.AddAddress(ctx, testAddress("Home"))
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, svc.SetDefaultAddress(ctx, 1), ErrNotAuthenticated)
	assert.ErrorIs(t, svc.DeleteAddress(ctx, 1), ErrNotAuthenticated)
}

func TestAddAddress_FirstBecomesDefault(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Config{})
	signup(t, svc)

	first := addAddress(t, svc, "Home")
	assert.True(t, first.IsDefault)

	second := addAddress(t, svc, "Work")
	assert.False(t, second.IsDefault)
	assert.NotEqual(t, first.ID, second.ID)

	assert.Equal(t, 1, defaultCount(t, svc))
}

func TestAddAddress_IgnoresRequestedDefault(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Config{})
	signup(t, svc)
	addAddress(t, svc, "Home")

	in := testAddress("Work")
	in.IsDefault = true
	out, err := svc.AddAddress(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, out.IsDefault)
}

func TestAddAddress_AllFieldsRequired(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Config{})
	signup(t, svc)

	in := testAddress("Home")
	in.City = ""
	_, err := svc.AddAddress(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetDefaultAddress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, Config{})
	signup(t, svc)

	home := addAddress(t, svc, "Home")
	work := addAddress(t, svc, "Work")

	require.NoError(t, svc.SetDefaultAddress(ctx, work.ID))

	addrs, err := svc.Addresses(ctx)
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	for _, a := range addrs {
		assert.Equal(t, a.ID == work.ID, a.IsDefault, a.Label)
	}

	// Unknown ids do not disturb the current default.
	err = svc.SetDefaultAddress(ctx, home.ID+work.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, defaultCount(t, svc))
}

func TestDeleteAddress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, Config{})
	signup(t, svc)

	home := addAddress(t, svc, "Home")
	addAddress(t, svc, "Work")

	assert.ErrorIs(t, svc.DeleteAddress(ctx, home.ID+9999), ErrNotFound)

	// Deleting the default leaves the rest without one.
	require.NoError(t, svc.DeleteAddress(ctx, home.ID))
	addrs, err := svc.Addresses(ctx)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.Equal(t, "Work", addrs[0].Label)
	assert.False(t, addrs[0].IsDefault)
}

func TestSettings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newTestService(t, Config{})

	_, err := svc.Settings(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	signup(t, svc)

	got, err := svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)

	updated := got
	updated.PromoEmails = false
	updated.SaveHistory = true
	require.NoError(t, svc.SaveSettings(ctx, updated))

	got, err = svc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}
