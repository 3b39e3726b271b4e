package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:cert:"

// Redis is a revocation list shared across instances. Entries carry a TTL so
// the list does not outlive the certificates it tracks.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed revocation list over an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Revoke marks a certificate ID as revoked for ttl. Use the certificate's
// remaining lifetime so the entry expires with it.
func (r *Redis) Revoke(ctx context.Context, certificateID string, ttl time.Duration) error {
	if err := r.client.Set(ctx, keyPrefix+certificateID, "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether a certificate ID has been revoked.
func (r *Redis) IsRevoked(ctx context.Context, certificateID string) (bool, error) {
	_, err := r.client.Get(ctx, keyPrefix+certificateID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}
