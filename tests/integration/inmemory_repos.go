package integration

import (
	"context"
	"sync"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
)

// --- In-Memory Order Repo ---

type inMemoryOrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order // keyed by reference
}

func newInMemoryOrderRepo() *inMemoryOrderRepo {
	return &inMemoryOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *inMemoryOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orders[o.Reference] = &cp
	return nil
}

func (r *inMemoryOrderRepo) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[reference]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) UpdateGatewayHash(ctx context.Context, reference, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[reference]
	if !ok {
		return nil
	}
	o.GatewayHash = hash
	return nil
}

// CompareAndSetStatus mirrors the conditional UPDATE semantics of the
// postgres repo: the transition applies only while the current status is in
// the expected set, under a single lock acquisition.
func (r *inMemoryOrderRepo) CompareAndSetStatus(
	ctx context.Context,
	reference string,
	expected []domain.OrderStatus,
	target domain.OrderStatus,
	update ports.StatusUpdate,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[reference]
	if !ok {
		return false, nil
	}

	allowed := false
	for _, s := range expected {
		if o.Status == s {
			allowed = true
			break
		}
	}
	if !allowed {
		return false, nil
	}

	o.Status = target
	if update.GatewayOrderCode != "" {
		o.GatewayOrderCode = update.GatewayOrderCode
	}
	if update.FailureReason != nil {
		o.FailureReason = update.FailureReason
	}
	o.UpdatedAt = update.UpdatedAt
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = time.Now().UTC()
	}
	return true, nil
}
