package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore stores responses for requests carrying an Idempotency-Key
// header, so a retried write replays the stored response instead of recording
// a second transaction.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "idempotency:",
	}
}

// CheckAndSet atomically checks if key exists, sets a placeholder if not.
// Returns (true, stored response) when the key was already present.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, ttl time.Duration) (bool, []byte, error) {
	fullKey := s.prefix + key

	existing, err := s.client.Get(ctx, fullKey).Bytes()
	if err == nil {
		return true, existing, nil
	}
	if err != redis.Nil {
		return false, nil, err
	}

	// Placeholder "locks" the key until Update stores the real response.
	set, err := s.client.SetNX(ctx, fullKey, "processing", ttl).Result()
	if err != nil {
		return false, nil, err
	}
	if !set {
		// Another request got there first
		existing, err := s.client.Get(ctx, fullKey).Bytes()
		if err != nil && err != redis.Nil {
			return false, nil, err
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update stores the final response for an idempotency key.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, response, ttl).Err()
}
