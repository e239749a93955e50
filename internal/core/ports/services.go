package ports

import (
	"context"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
)

// GatewayClient talks to the external payment processor.
type GatewayClient interface {
	// Authenticate performs the client-credentials exchange and returns a
	// bearer token. Each payment-link creation re-authenticates; tokens are
	// not cached across calls.
	Authenticate(ctx context.Context) (string, error)
	CreateLink(ctx context.Context, token string, req LinkRequest) (*LinkResult, error)
}

// LinkRequest is the outbound payment-link creation request.
type LinkRequest struct {
	Reference     string
	Concept       string
	Amount        int64 // integer minor units, gateway requires integer cents
	Currency      string
	Description   string
	OKCallbackURL string
	KOCallbackURL string
	CustomerEmail string
	CustomerName  string
}

// LinkResult is the gateway's payment-link creation response.
type LinkResult struct {
	ShortURL string
	Hash     string
}

// --- Service Ports (Business Logic) ---

// PaymentService creates payment links and processes test-instrument cards.
type PaymentService interface {
	CreatePaymentLink(ctx context.Context, params LinkParams) (*PaymentLink, error)
	ProcessCardPayment(ctx context.Context, params CardParams) (*CardResult, error)
}

// LinkParams holds validated input for payment-link creation.
// Amount arrives as the storefront sends it and is rounded to the nearest
// integer minor unit before transmission.
type LinkParams struct {
	Reference     string
	Concept       string
	Amount        float64
	Currency      string
	Description   string
	CustomerEmail string
	CustomerName  string
}

// PaymentLink is the result surfaced to the storefront.
type PaymentLink struct {
	Reference string
	ShortURL  string
	Hash      string
}

// CardParams holds input for test-instrument card processing.
type CardParams struct {
	CardNumber string
	Expiry     string
	CVV        string
	Amount     int64
}

// CardResult holds the simulated card processing outcome.
type CardResult struct {
	TransactionID string
	Success       bool
}

// WebhookService translates an inbound gateway notification into an order
// status update.
type WebhookService interface {
	HandleNotification(ctx context.Context, n domain.Notification) (*WebhookOutcome, error)
}

// WebhookOutcome is the acknowledgement returned to the gateway.
type WebhookOutcome struct {
	Reference string
	Status    domain.OrderStatus
	Duplicate bool // redelivery of an already-terminal notification
}

// SignatureVerifier validates the cryptographic signature of a notification
// before its payload is trusted.
type SignatureVerifier interface {
	Verify(n domain.Notification) bool
}

// CRMSyncService mirrors commerce data into the external marketing platform.
// Best-effort: failures are logged and never propagated to the payment flow.
type CRMSyncService interface {
	RegisterProducts(ctx context.Context, products []domain.Product) error
	RegisterOrder(ctx context.Context, order *domain.Order) error
}

// CRMClient is the raw transport to the CRM's batch-upsert endpoints.
type CRMClient interface {
	UpsertProducts(ctx context.Context, products []domain.Product) error
	UpsertOrder(ctx context.Context, order *domain.Order) error
}
