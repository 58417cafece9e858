// Package store persists per-session snapshots of the cart and auth state
// so they survive a reload. Cart and auth live under separate namespaces;
// saves are unconditional, so concurrent tabs resolve as last-writer-wins.
package store

import (
	"context"
	"errors"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// ErrNotFound is returned when no snapshot exists for the session.
var ErrNotFound = errors.New("snapshot not found")

const (
	cartNamespace = "cart-storage"
	authNamespace = "auth-storage"
)

// SnapshotStore is handed to the handlers as an explicit dependency; nothing
// reads it as ambient global state.
type SnapshotStore interface {
	LoadCart(ctx context.Context, session string) (models.CartSnapshot, error)
	SaveCart(ctx context.Context, session string, snap models.CartSnapshot) error
	DeleteCart(ctx context.Context, session string) error

	LoadAuth(ctx context.Context, session string) (models.AuthSnapshot, error)
	SaveAuth(ctx context.Context, session string, snap models.AuthSnapshot) error
	DeleteAuth(ctx context.Context, session string) error
}

func cartKey(session string) string {
	return cartNamespace + ":" + session
}

func authKey(session string) string {
	return authNamespace + ":" + session
}
