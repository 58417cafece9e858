// Package auth holds the mocked credential flow. The simulated latency and
// the accept-anything-non-empty rule stand in for a real credential check;
// everything else in the service (hashing, snapshots, balance updates) works
// the way a real implementation would, so swapping the mock out later only
// replaces the Authenticator implementation.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
	"github.com/Reown-Commerce/reown-storefront-backend/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator is the narrow surface the HTTP layer talks to. The cart and
// catalog packages never depend on it.
type Authenticator interface {
	Login(ctx context.Context, session, email, password string) (models.User, error)
	Register(ctx context.Context, session string, req models.RegisterRequest) (models.User, error)
	Logout(ctx context.Context, session string) error
	CurrentUser(ctx context.Context, session string) (models.User, bool)
	CreditRWN(ctx context.Context, session string, amount int64) (models.User, error)
}

// MockAuthenticator accepts any non-empty email/password pair after a
// simulated network delay.
type MockAuthenticator struct {
	Store store.SnapshotStore
	// Delay simulates the upstream round trip. Tests set it to zero.
	Delay time.Duration
}

func NewMockAuthenticator(s store.SnapshotStore, delay time.Duration) *MockAuthenticator {
	return &MockAuthenticator{Store: s, Delay: delay}
}

func (a *MockAuthenticator) wait(ctx context.Context) error {
	if a.Delay <= 0 {
		return nil
	}
	select {
	case <-time.After(a.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login accepts any non-empty credentials. A session that registered earlier
// gets its stored user back, balance intact, as long as the password matches
// the stored hash; anything else produces the stock demo account.
func (a *MockAuthenticator) Login(ctx context.Context, session, email, password string) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	if snap, err := a.Store.LoadAuth(ctx, session); err == nil && snap.User != nil && snap.User.Email == email {
		if bcrypt.CompareHashAndPassword([]byte(snap.PasswordHash), []byte(password)) == nil {
			snap.IsAuthenticated = true
			if err := a.Store.SaveAuth(ctx, session, snap); err != nil {
				return models.User{}, err
			}
			return *snap.User, nil
		}
		return models.User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Email:      email,
		FirstName:  "John",
		LastName:   "Doe",
		RWNBalance: 5000,
		Tier:       models.TierStandard,
	}
	snap := models.AuthSnapshot{
		User:            &user,
		IsAuthenticated: true,
		PasswordHash:    string(hash),
	}
	if err := a.Store.SaveAuth(ctx, session, snap); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Register creates a fresh account with a zero token balance.
func (a *MockAuthenticator) Register(ctx context.Context, session string, req models.RegisterRequest) (models.User, error) {
	if err := a.wait(ctx); err != nil {
		return models.User{}, err
	}
	if req.Email == "" || req.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		RWNBalance: 0,
		Tier:       models.TierStandard,
	}
	snap := models.AuthSnapshot{
		User:            &user,
		IsAuthenticated: true,
		PasswordHash:    string(hash),
	}
	if err := a.Store.SaveAuth(ctx, session, snap); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the authenticated flag but keeps the stored account so the
// session can log back in.
func (a *MockAuthenticator) Logout(ctx context.Context, session string) error {
	snap, err := a.Store.LoadAuth(ctx, session)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	snap.IsAuthenticated = false
	return a.Store.SaveAuth(ctx, session, snap)
}

func (a *MockAuthenticator) CurrentUser(ctx context.Context, session string) (models.User, bool) {
	snap, err := a.Store.LoadAuth(ctx, session)
	if err != nil || snap.User == nil || !snap.IsAuthenticated {
		return models.User{}, false
	}
	return *snap.User, true
}

// CreditRWN adds purchased tokens to the session user's balance. The cart
// ledger never calls this; only the pack purchase flow does.
func (a *MockAuthenticator) CreditRWN(ctx context.Context, session string, amount int64) (models.User, error) {
	snap, err := a.Store.LoadAuth(ctx, session)
	if err != nil {
		return models.User{}, err
	}
	if snap.User == nil || !snap.IsAuthenticated {
		return models.User{}, ErrInvalidCredentials
	}
	snap.User.RWNBalance += amount
	if err := a.Store.SaveAuth(ctx, session, snap); err != nil {
		return models.User{}, err
	}
	return *snap.User, nil
}
