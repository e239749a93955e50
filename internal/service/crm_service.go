package service

import (
	"context"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"

	"github.com/rs/zerolog"
)

// CRMSyncServiceImpl implements ports.CRMSyncService. All transport errors
// are caught here and logged; nothing propagates to the payment flow.
type CRMSyncServiceImpl struct {
	client ports.CRMClient
	log    zerolog.Logger
}

// NewCRMSyncService creates a new CRMSyncServiceImpl. A nil client disables
// sync entirely.
func NewCRMSyncService(client ports.CRMClient, log zerolog.Logger) *CRMSyncServiceImpl {
	return &CRMSyncServiceImpl{client: client, log: log}
}

// RegisterProducts mirrors the product catalog. Best-effort.
func (s *CRMSyncServiceImpl) RegisterProducts(ctx context.Context, products []domain.Product) error {
	if s.client == nil || len(products) == 0 {
		return nil
	}
	if err := s.client.UpsertProducts(ctx, products); err != nil {
		s.log.Warn().Err(err).Int("count", len(products)).Msg("crm product sync failed")
		return nil
	}
	s.log.Info().Int("count", len(products)).Msg("products mirrored to crm")
	return nil
}

// RegisterOrder mirrors a completed order snapshot. Best-effort.
func (s *CRMSyncServiceImpl) RegisterOrder(ctx context.Context, order *domain.Order) error {
	if s.client == nil || order == nil {
		return nil
	}
	if err := s.client.UpsertOrder(ctx, order); err != nil {
		s.log.Warn().Err(err).Str("reference", order.Reference).Msg("crm order sync failed")
		return nil
	}
	s.log.Info().Str("reference", order.Reference).Msg("order mirrored to crm")
	return nil
}
