package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// DedupChecker provides idempotency checks for notification deliveries.
// Key format: notify:<user_id>:<kind>:<unix_timestamp>
type DedupChecker struct {
	client *redis.Client
}

// NewDedupChecker creates a DedupChecker wrapping the given Redis client.
func NewDedupChecker(client *redis.Client) *DedupChecker {
	return &DedupChecker{client: client}
}

// IsDuplicate reports whether this exact notification was already delivered.
func (d *DedupChecker) IsDuplicate(ctx context.Context, userID int64, kind string, at time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(userID, kind, at)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification was delivered (expires after dedupTTL).
func (d *DedupChecker) Mark(ctx context.Context, userID int64, kind string, at time.Time) error {
	return d.client.Set(ctx, d.key(userID, kind, at), "1", dedupTTL).Err()
}

func (d *DedupChecker) key(userID int64, kind string, at time.Time) string {
	return fmt.Sprintf("notify:%d:%s:%d", userID, kind, at.Unix())
}
