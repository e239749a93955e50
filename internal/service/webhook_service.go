package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// How long a processed notification marker lives in the dedupe cache.
const notificationMarkerTTL = 24 * time.Hour

// WebhookServiceImpl implements ports.WebhookService.
type WebhookServiceImpl struct {
	orders   ports.OrderRepository
	verifier ports.SignatureVerifier
	cache    ports.NotificationCache
	crm      ports.CRMSyncService
	log      zerolog.Logger
}

// NewWebhookService creates a new WebhookServiceImpl. cache and crm may be
// nil; both are best-effort collaborators.
func NewWebhookService(
	orders ports.OrderRepository,
	verifier ports.SignatureVerifier,
	cache ports.NotificationCache,
	crm ports.CRMSyncService,
	log zerolog.Logger,
) *WebhookServiceImpl {
	return &WebhookServiceImpl{
		orders:   orders,
		verifier: verifier,
		cache:    cache,
		crm:      crm,
		log:      log,
	}
}

// HandleNotification translates a gateway notification into an order status
// update. Redeliveries for already-terminal orders are acknowledged without
// side effects; the terminal-state check is enforced atomically by the
// repository's conditional update.
func (s *WebhookServiceImpl) HandleNotification(ctx context.Context, n domain.Notification) (*ports.WebhookOutcome, error) {
	if !s.verifier.Verify(n) {
		s.log.Warn().
			Str("reference", n.Reference).
			Msg("webhook signature verification failed")
		return nil, apperror.ErrInvalidSignature()
	}

	target, known := n.TargetStatus()
	if !known {
		return nil, apperror.ErrUnknownStateCode(n.StateCode)
	}

	// The envelope result and the state code describe the same outcome; a
	// contradiction means a malformed or tampered payload.
	if (target == domain.OrderStatusSucceeded) != (n.Result == domain.NotificationSuccess) {
		s.log.Warn().
			Str("reference", n.Reference).
			Str("result", string(n.Result)).
			Int("state", n.StateCode).
			Msg("notification result contradicts state code")
		return nil, apperror.Validation("notification result does not match state code")
	}

	// Fast-path dedupe: a notification already processed is acknowledged
	// straight from the cache. Best-effort; a cache failure never blocks.
	if s.cache != nil {
		status, seen, err := s.cache.GetProcessed(ctx, n.Reference, n.StateCode)
		if err != nil {
			s.log.Warn().Err(err).Str("reference", n.Reference).Msg("notification dedupe cache unavailable")
		} else if seen {
			s.log.Info().
				Str("reference", n.Reference).
				Int("state", n.StateCode).
				Msg("duplicate notification acknowledged from cache")
			return &ports.WebhookOutcome{Reference: n.Reference, Status: status, Duplicate: true}, nil
		}
	}

	order, err := s.orders.GetByReference(ctx, n.Reference)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("lookup order: %w", err))
	}
	if order == nil {
		s.log.Warn().
			Str("reference", n.Reference).
			Int("state", n.StateCode).
			Msg("webhook for unknown order")
		return nil, apperror.ErrOrderNotFound(n.Reference)
	}

	if order.IsTerminal() {
		s.log.Info().
			Str("reference", n.Reference).
			Str("status", string(order.Status)).
			Msg("duplicate notification for terminal order, acknowledging")
		s.markProcessed(ctx, n, order.Status)
		return &ports.WebhookOutcome{Reference: n.Reference, Status: order.Status, Duplicate: true}, nil
	}

	now := time.Now().UTC()
	applied, err := s.orders.CompareAndSetStatus(ctx, n.Reference,
		[]domain.OrderStatus{domain.OrderStatusPending}, target,
		ports.StatusUpdate{
			GatewayOrderCode: n.BankOrderCode,
			FailureReason:    n.FailureReason,
			UpdatedAt:        now,
		})
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("transition order: %w", err))
	}
	if !applied {
		// Lost the race to a concurrent delivery. The order is terminal now.
		s.log.Info().
			Str("reference", n.Reference).
			Msg("concurrent notification already transitioned order")
		return &ports.WebhookOutcome{Reference: n.Reference, Status: target, Duplicate: true}, nil
	}

	s.log.Info().
		Str("reference", n.Reference).
		Str("status", string(target)).
		Str("bank_order_code", n.BankOrderCode).
		Msg("order status transitioned")

	s.markProcessed(ctx, n, target)

	if target == domain.OrderStatusSucceeded && s.crm != nil {
		order.Status = target
		order.GatewayOrderCode = n.BankOrderCode
		order.UpdatedAt = now // the timestamp the repository persisted
		// Best-effort mirror; never blocks or rolls back the transition.
		if err := s.crm.RegisterOrder(ctx, order); err != nil {
			s.log.Warn().Err(err).Str("reference", n.Reference).Msg("crm order sync failed")
		}
	}

	return &ports.WebhookOutcome{Reference: n.Reference, Status: target}, nil
}

// markProcessed records the notification outcome in the dedupe cache.
// Failures are logged only; the conditional update owns correctness.
func (s *WebhookServiceImpl) markProcessed(ctx context.Context, n domain.Notification, status domain.OrderStatus) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkProcessed(ctx, n.Reference, n.StateCode, status, notificationMarkerTTL); err != nil {
		s.log.Warn().Err(err).Str("reference", n.Reference).Msg("recording processed notification failed")
	}
}
