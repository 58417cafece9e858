package store

import (
	"context"
	"sync"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// MemoryStore keeps snapshots in process memory. Used in tests and when
// REDIS_URL is not configured; state lasts for the process lifetime only.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.CartSnapshot
	auths map[string]models.AuthSnapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]models.CartSnapshot),
		auths: make(map[string]models.AuthSnapshot),
	}
}

func (s *MemoryStore) LoadCart(_ context.Context, session string) (models.CartSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.carts[cartKey(session)]
	if !ok {
		return models.CartSnapshot{}, ErrNotFound
	}
	return snap, nil
}

func (s *MemoryStore) SaveCart(_ context.Context, session string, snap models.CartSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartKey(session)] = snap
	return nil
}

func (s *MemoryStore) DeleteCart(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartKey(session))
	return nil
}

func (s *MemoryStore) LoadAuth(_ context.Context, session string) (models.AuthSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.auths[authKey(session)]
	if !ok {
		return models.AuthSnapshot{}, ErrNotFound
	}
	return snap, nil
}

func (s *MemoryStore) SaveAuth(_ context.Context, session string, snap models.AuthSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auths[authKey(session)] = snap
	return nil
}

func (s *MemoryStore) DeleteAuth(_ context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.auths, authKey(session))
	return nil
}
