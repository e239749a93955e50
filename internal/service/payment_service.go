package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Accepted test instruments for non-production card processing.
var testCards = map[string]bool{
	"4242424242424242": true,
	"4111111111111111": true,
	"5555555555554444": true,
}

// PaymentServiceImpl implements ports.PaymentService.
type PaymentServiceImpl struct {
	orders        ports.OrderRepository
	gateway       ports.GatewayClient
	okCallbackURL string
	koCallbackURL string
	cardDelay     time.Duration
	log           zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl. cardDelay simulates
// processor latency for test-instrument card payments.
func NewPaymentService(
	orders ports.OrderRepository,
	gateway ports.GatewayClient,
	okCallbackURL string,
	koCallbackURL string,
	cardDelay time.Duration,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		orders:        orders,
		gateway:       gateway,
		okCallbackURL: okCallbackURL,
		koCallbackURL: koCallbackURL,
		cardDelay:     cardDelay,
		log:           log,
	}
}

// CreatePaymentLink creates a PENDING order and obtains a single-use payment
// link from the gateway. Each call re-authenticates; tokens are not cached.
func (s *PaymentServiceImpl) CreatePaymentLink(ctx context.Context, params ports.LinkParams) (*ports.PaymentLink, error) {
	switch {
	case params.Reference == "":
		return nil, apperror.ErrMissingField("reference")
	case params.Concept == "":
		return nil, apperror.ErrMissingField("concept")
	case params.Currency == "":
		return nil, apperror.ErrMissingField("currency")
	case params.Amount <= 0:
		return nil, apperror.Validation("amount must be positive")
	}

	// The gateway requires integer cents.
	amountMinor := int64(math.Round(params.Amount))

	existing, err := s.orders.GetByReference(ctx, params.Reference)
	if err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("check reference: %w", err))
	}
	switch {
	case existing == nil:
		now := time.Now().UTC()
		order := &domain.Order{
			ID:          uuid.New(),
			Reference:   params.Reference,
			Amount:      amountMinor,
			Currency:    params.Currency,
			Concept:     params.Concept,
			Description: params.Description,
			Status:      domain.OrderStatusPending,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.orders.Create(ctx, order); err != nil {
			return nil, apperror.ErrPersistence(fmt.Errorf("create order: %w", err))
		}
	case existing.Status == domain.OrderStatusPending && existing.GatewayHash == "":
		// A prior attempt created the order but never obtained a link (the
		// gateway call failed). Retry the link, keep the existing order.
		s.log.Info().
			Str("reference", params.Reference).
			Msg("retrying payment link for pending order without a link")
	default:
		return nil, apperror.ErrDuplicateReference(params.Reference)
	}

	token, err := s.gateway.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	link, err := s.gateway.CreateLink(ctx, token, ports.LinkRequest{
		Reference:     params.Reference,
		Concept:       params.Concept,
		Amount:        amountMinor,
		Currency:      params.Currency,
		Description:   params.Description,
		OKCallbackURL: s.okCallbackURL,
		KOCallbackURL: s.koCallbackURL,
		CustomerEmail: params.CustomerEmail,
		CustomerName:  params.CustomerName,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orders.UpdateGatewayHash(ctx, params.Reference, link.Hash); err != nil {
		return nil, apperror.ErrPersistence(fmt.Errorf("record gateway hash: %w", err))
	}

	s.log.Info().
		Str("reference", params.Reference).
		Int64("amount", amountMinor).
		Str("currency", params.Currency).
		Str("hash", link.Hash).
		Msg("payment link created")

	return &ports.PaymentLink{
		Reference: params.Reference,
		ShortURL:  link.ShortURL,
		Hash:      link.Hash,
	}, nil
}

// ProcessCardPayment validates a card against the test-instrument whitelist
// after a simulated processing delay. Non-production testing contexts only.
func (s *PaymentServiceImpl) ProcessCardPayment(ctx context.Context, params ports.CardParams) (*ports.CardResult, error) {
	if params.CardNumber == "" {
		return nil, apperror.ErrMissingField("card_number")
	}
	if params.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}

	if s.cardDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.cardDelay):
		}
	}

	if !testCards[params.CardNumber] {
		s.log.Warn().Msg("card payment rejected: instrument not whitelisted")
		return nil, apperror.ErrPaymentRejected()
	}

	result := &ports.CardResult{
		TransactionID: uuid.New().String(),
		Success:       true,
	}

	s.log.Info().
		Str("transaction_id", result.TransactionID).
		Int64("amount", params.Amount).
		Msg("test card payment processed")

	return result, nil
}
