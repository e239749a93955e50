package ports

import (
	"context"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// GetByReference returns nil, nil when no order matches.
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	UpdateGatewayHash(ctx context.Context, reference string, hash string) error
	// CompareAndSetStatus transitions the order to target only if its current
	// status is one of expected, atomically relative to the read. Returns
	// false when the conditional update matched no row (already terminal or
	// concurrently transitioned).
	CompareAndSetStatus(ctx context.Context, reference string, expected []domain.OrderStatus, target domain.OrderStatus, update StatusUpdate) (bool, error)
}

// StatusUpdate carries the webhook fields recorded alongside a transition.
// UpdatedAt is the timestamp the repository persists, so callers can reuse
// the exact stored value.
type StatusUpdate struct {
	GatewayOrderCode string
	FailureReason    *string
	UpdatedAt        time.Time
}

// NotificationCache is a best-effort dedupe of redelivered webhook
// notifications: processed deliveries are recorded with their resulting
// status so redeliveries can be acknowledged without touching postgres.
// Correctness is still owned by CompareAndSetStatus.
type NotificationCache interface {
	// GetProcessed returns the status recorded for reference+state.
	// ok is false when the notification has not been processed (or the
	// marker expired).
	GetProcessed(ctx context.Context, reference string, state int) (status domain.OrderStatus, ok bool, err error)
	// MarkProcessed records the outcome of a processed notification.
	MarkProcessed(ctx context.Context, reference string, state int, status domain.OrderStatus, ttl time.Duration) error
}
