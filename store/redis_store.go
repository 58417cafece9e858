package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

// Snapshots expire after 30 days of inactivity; every save refreshes the TTL.
const snapshotTTL = 30 * 24 * time.Hour

// RedisStore keeps snapshots in Redis, one JSON value per session key.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) load(ctx context.Context, key string, out any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *RedisStore) save(ctx context.Context, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, raw, snapshotTTL).Err()
}

func (s *RedisStore) LoadCart(ctx context.Context, session string) (models.CartSnapshot, error) {
	var snap models.CartSnapshot
	err := s.load(ctx, cartKey(session), &snap)
	return snap, err
}

func (s *RedisStore) SaveCart(ctx context.Context, session string, snap models.CartSnapshot) error {
	return s.save(ctx, cartKey(session), snap)
}

func (s *RedisStore) DeleteCart(ctx context.Context, session string) error {
	return s.client.Del(ctx, cartKey(session)).Err()
}

func (s *RedisStore) LoadAuth(ctx context.Context, session string) (models.AuthSnapshot, error) {
	var snap models.AuthSnapshot
	err := s.load(ctx, authKey(session), &snap)
	return snap, err
}

func (s *RedisStore) SaveAuth(ctx context.Context, session string, snap models.AuthSnapshot) error {
	return s.save(ctx, authKey(session), snap)
}

func (s *RedisStore) DeleteAuth(ctx context.Context, session string) error {
	return s.client.Del(ctx, authKey(session)).Err()
}
