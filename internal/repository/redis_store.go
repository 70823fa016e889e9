package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumina-reserve/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisOverrideStore keeps the override entry under a single Redis key, so
// several server instances share one demo event list. Writes from different
// instances are last-writer-wins.
type RedisOverrideStore struct {
	client *redis.Client
	key    string
}

func NewRedisOverrideStore(client *redis.Client, key string) *RedisOverrideStore {
	return &RedisOverrideStore{client: client, key: key}
}

func (s *RedisOverrideStore) Load(ctx context.Context) ([]models.Event, error) {
	const op = "repository.RedisOverrideStore.Load"

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Event{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events, err := decodeOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return events, nil
}

func (s *RedisOverrideStore) Save(ctx context.Context, events []models.Event) error {
	const op = "repository.RedisOverrideStore.Save"

	data, err := encodeOverrides(events)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *RedisOverrideStore) Close() error {
	const op = "repository.RedisOverrideStore.Close"

	if err := s.client.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
