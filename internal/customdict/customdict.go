package customdict

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const baseKey = "custom_dict"

// CustomDict wraps a Redis client to store user words as a set.
type CustomDict struct {
	client redis.Cmdable
	key    string
}

// New creates a CustomDict. A non-empty domain gets its own set.
func New(client redis.Cmdable, domain string) *CustomDict {
	return &CustomDict{client: client, key: Key(domain)}
}

// Key returns the Redis key of the word set for domain.
func Key(domain string) string {
	if domain == "" {
		return baseKey
	}
	return baseKey + ":" + domain
}

// Add inserts words into the custom dictionary.
func (cd *CustomDict) Add(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}
	members := make([]any, len(words))
	for i, w := range words {
		members[i] = w
	}
	if err := cd.client.SAdd(ctx, cd.key, members...).Err(); err != nil {
		return fmt.Errorf("customdict: add: %w", err)
	}
	return nil
}

// Remove deletes a word from the custom dictionary.
func (cd *CustomDict) Remove(ctx context.Context, word string) error {
	if err := cd.client.SRem(ctx, cd.key, word).Err(); err != nil {
		return fmt.Errorf("customdict: remove: %w", err)
	}
	return nil
}

// All returns all words stored in the custom dictionary.
func (cd *CustomDict) All(ctx context.Context) ([]string, error) {
	words, err := cd.client.SMembers(ctx, cd.key).Result()
	if err != nil {
		return nil, fmt.Errorf("customdict: list: %w", err)
	}
	return words, nil
}

// Ping checks that the server is reachable.
func (cd *CustomDict) Ping(ctx context.Context) error {
	return cd.client.Ping(ctx).Err()
}
