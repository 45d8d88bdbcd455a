package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dedup:contact:"

// ContactDeduper remembers accepted contact submissions by fingerprint.
// Key format: dedup:contact:<fingerprint>, value is the submission id.
type ContactDeduper struct {
	client *redis.Client
}

// NewContactDeduper creates a ContactDeduper wrapping the given Redis client.
func NewContactDeduper(client *redis.Client) *ContactDeduper {
	return &ContactDeduper{client: client}
}

// Lookup returns the submission id stored for fingerprint, if any.
func (d *ContactDeduper) Lookup(ctx context.Context, fingerprint string) (string, bool, error) {
	id, err := d.client.Get(ctx, d.key(fingerprint)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("dedup lookup: %w", err)
	}
	return id, true, nil
}

// Remember records fingerprint -> id until ttl elapses.
func (d *ContactDeduper) Remember(ctx context.Context, fingerprint, id string, ttl time.Duration) error {
	if err := d.client.Set(ctx, d.key(fingerprint), id, ttl).Err(); err != nil {
		return fmt.Errorf("dedup remember: %w", err)
	}
	return nil
}

func (d *ContactDeduper) key(fingerprint string) string {
	return keyPrefix + fingerprint
}
