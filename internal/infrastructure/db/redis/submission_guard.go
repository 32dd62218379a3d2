package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Minute

// SubmissionGuard implements ports.SubmissionGuard backed by Redis.
// Key format: submission:<key> where key identifies the customer and slot.
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// Seen reports whether an identical submission was marked within guardTTL.
func (g *SubmissionGuard) Seen(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after guardTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, key string) error {
	return g.client.Set(ctx, g.key(key), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(key string) string {
	return "submission:" + key
}
