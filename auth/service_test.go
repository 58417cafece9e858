package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
	"github.com/Reown-Commerce/reown-storefront-backend/store"
)

func newTestAuth() *MockAuthenticator {
	return NewMockAuthenticator(store.NewMemoryStore(), 0)
}

func TestLoginSucceedsWithNonEmptyCredentials(t *testing.T) {
	a := newTestAuth()

	user, err := a.Login(context.Background(), "s1", "shopper@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "shopper@example.com", user.Email)
	assert.Equal(t, "John", user.FirstName)
	assert.Equal(t, int64(5000), user.RWNBalance)
	assert.Equal(t, models.TierStandard, user.Tier)
	assert.NotEmpty(t, user.ID)
}

func TestLoginRejectsEmptyFields(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	_, err := a.Login(ctx, "s1", "", "hunter2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Login(ctx, "s1", "shopper@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterStartsWithZeroBalance(t *testing.T) {
	a := newTestAuth()

	user, err := a.Register(context.Background(), "s1", models.RegisterRequest{
		Email:     "new@example.com",
		Password:  "secret123",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), user.RWNBalance)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, models.TierStandard, user.Tier)
}

func TestRegisteredSessionLogsBackInWithSamePassword(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	registered, err := a.Register(ctx, "s1", models.RegisterRequest{
		Email: "new@example.com", Password: "secret123",
		FirstName: "Ada", LastName: "Lovelace",
	})
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx, "s1"))

	user, err := a.Login(ctx, "s1", "new@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, int64(0), user.RWNBalance)
}

func TestLoginWrongPasswordForStoredAccountFails(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	_, err := a.Register(ctx, "s1", models.RegisterRequest{
		Email: "new@example.com", Password: "secret123",
		FirstName: "Ada", LastName: "Lovelace",
	})
	require.NoError(t, err)

	_, err = a.Login(ctx, "s1", "new@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsAuthenticationOnly(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	_, err := a.Login(ctx, "s1", "shopper@example.com", "hunter2")
	require.NoError(t, err)

	_, ok := a.CurrentUser(ctx, "s1")
	require.True(t, ok)

	require.NoError(t, a.Logout(ctx, "s1"))

	_, ok = a.CurrentUser(ctx, "s1")
	assert.False(t, ok)

	// Logout on a session with no snapshot is a no-op.
	assert.NoError(t, a.Logout(ctx, "never-logged-in"))
}

func TestCreditRWNAddsToBalance(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	_, err := a.Login(ctx, "s1", "shopper@example.com", "hunter2")
	require.NoError(t, err)

	user, err := a.CreditRWN(ctx, "s1", 10000)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), user.RWNBalance)

	// Balance persists across reads.
	current, ok := a.CurrentUser(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, int64(15000), current.RWNBalance)
}

func TestCreditRWNRequiresAuthentication(t *testing.T) {
	a := newTestAuth()
	ctx := context.Background()

	_, err := a.CreditRWN(ctx, "anonymous", 1000)
	assert.Error(t, err)

	_, err = a.Login(ctx, "s1", "shopper@example.com", "hunter2")
	require.NoError(t, err)
	require.NoError(t, a.Logout(ctx, "s1"))

	_, err = a.CreditRWN(ctx, "s1", 1000)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	a := NewMockAuthenticator(store.NewMemoryStore(), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Login(ctx, "s1", "shopper@example.com", "hunter2")
	assert.ErrorIs(t, err, context.Canceled)
}
