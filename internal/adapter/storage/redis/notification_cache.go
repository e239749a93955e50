package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// NotificationCache implements ports.NotificationCache. Processed
// notifications are stored as reference+state -> resulting order status, so
// a redelivery can be acknowledged straight from the cache; the order
// repository's conditional update remains the source of truth.
type NotificationCache struct {
	client *goredis.Client
	prefix string
}

// NewNotificationCache creates a new Redis-backed notification cache.
func NewNotificationCache(client *goredis.Client) *NotificationCache {
	return &NotificationCache{
		client: client,
		prefix: "webhook:",
	}
}

func (c *NotificationCache) key(reference string, state int) string {
	return fmt.Sprintf("%s%s:%d", c.prefix, reference, state)
}

// GetProcessed returns the status recorded for a processed notification.
func (c *NotificationCache) GetProcessed(ctx context.Context, reference string, state int) (domain.OrderStatus, bool, error) {
	val, err := c.client.Get(ctx, c.key(reference, state)).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis notification lookup: %w", err)
	}
	return domain.OrderStatus(val), true, nil
}

// MarkProcessed records the outcome of a processed notification.
func (c *NotificationCache) MarkProcessed(ctx context.Context, reference string, state int, status domain.OrderStatus, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(reference, state), string(status), ttl).Err(); err != nil {
		return fmt.Errorf("redis notification mark: %w", err)
	}
	return nil
}
