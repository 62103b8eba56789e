package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/pkg/logger"
)

// RedisStore persists the session slot in Redis so it survives restarts.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		key:    SlotKey,
	}
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, raw, 0).Err()
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context) (*models.Identity, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if identity := decode(raw); identity != nil {
		return identity, nil
	}
	// Unreadable payloads are treated as no session, not a fault.
	logger.Warn().Str("key", s.key).Msg("Discarding unreadable session payload")
	return nil, nil
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
