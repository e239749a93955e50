package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create inserts a new order.
func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, reference, amount, currency, concept, description,
		status, gateway_hash, gateway_order_code, failure_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.Reference, o.Amount, o.Currency, o.Concept, o.Description,
		o.Status, o.GatewayHash, o.GatewayOrderCode, o.FailureReason,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByReference fetches an order by its merchant-assigned reference.
// Returns nil, nil when not found.
func (r *OrderRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `SELECT id, reference, amount, currency, concept, description,
		status, gateway_hash, gateway_order_code, failure_reason, created_at, updated_at
		FROM orders WHERE reference = $1`

	o := &domain.Order{}
	err := r.pool.QueryRow(ctx, query, reference).Scan(
		&o.ID, &o.Reference, &o.Amount, &o.Currency, &o.Concept, &o.Description,
		&o.Status, &o.GatewayHash, &o.GatewayOrderCode, &o.FailureReason,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	return o, nil
}

// UpdateGatewayHash records the payment-link identifier on a freshly created order.
func (r *OrderRepo) UpdateGatewayHash(ctx context.Context, reference string, hash string) error {
	query := `UPDATE orders SET gateway_hash = $1, updated_at = $2 WHERE reference = $3`

	tag, err := r.pool.Exec(ctx, query, hash, time.Now().UTC(), reference)
	if err != nil {
		return fmt.Errorf("update gateway hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order not found: %s", reference)
	}
	return nil
}

// CompareAndSetStatus performs the conditional status transition in a single
// UPDATE, so the terminal-state check is atomic relative to the read of the
// current status. Returns false when the current status is not in expected.
func (r *OrderRepo) CompareAndSetStatus(ctx context.Context, reference string, expected []domain.OrderStatus, target domain.OrderStatus, update ports.StatusUpdate) (bool, error) {
	query := `UPDATE orders
		SET status = $1,
		    gateway_order_code = COALESCE(NULLIF($2, ''), gateway_order_code),
		    failure_reason = COALESCE($3, failure_reason),
		    updated_at = $4
		WHERE reference = $5 AND status = ANY($6)`

	expectedStr := make([]string, len(expected))
	for i, s := range expected {
		expectedStr[i] = string(s)
	}

	ts := update.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	tag, err := r.pool.Exec(ctx, query,
		target, update.GatewayOrderCode, update.FailureReason,
		ts, reference, expectedStr,
	)
	if err != nil {
		return false, fmt.Errorf("conditional status update: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
