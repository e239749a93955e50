package dto

import "github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"

// CreateLinkRequest is the request body for payment-link creation.
type CreateLinkRequest struct {
	Reference     string  `json:"reference" binding:"required,max=100"`
	Concept       string  `json:"concept" binding:"required,max=255"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required,len=3"`
	Description   string  `json:"description,omitempty"`
	CustomerEmail string  `json:"customer_email,omitempty" binding:"omitempty,email"`
	CustomerName  string  `json:"customer_name,omitempty"`
}

// CreateLinkResponse is the response body for a created payment link.
type CreateLinkResponse struct {
	Reference string `json:"reference"`
	ShortURL  string `json:"short_url"`
	Hash      string `json:"hash"`
}

// CardPaymentRequest is the request body for test-card processing.
type CardPaymentRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	Expiry     string `json:"expiry" binding:"required"`
	CVV        string `json:"cvv" binding:"required,min=3,max=4"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

// CardPaymentResponse is the response body for a processed test card.
type CardPaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	Success       bool   `json:"success"`
}

// WebhookRequest is the gateway notification envelope.
type WebhookRequest struct {
	Status string      `json:"status" binding:"required,oneof=success failed"`
	Data   WebhookData `json:"data" binding:"required"`
}

// WebhookData carries the notification payload. Field names follow the
// gateway's wire format.
type WebhookData struct {
	State                  int     `json:"state" binding:"required"`
	Reference              string  `json:"reference" binding:"required"`
	Amount                 int64   `json:"amount"`
	OriginalCurrencyAmount int64   `json:"originalCurrencyAmount"`
	BankOrderCode          string  `json:"bankOrderCode"`
	Signature              string  `json:"signaturev2"`
	Currency               string  `json:"currency"`
	Concept                string  `json:"concept"`
	Description            string  `json:"description"`
	CreatedAt              string  `json:"createdAt"`
	FailureReason          *string `json:"failureReason,omitempty"`
}

// ToNotification converts the wire payload to the domain form.
func (r WebhookRequest) ToNotification() domain.Notification {
	amount := r.Data.Amount
	if amount == 0 {
		amount = r.Data.OriginalCurrencyAmount
	}
	return domain.Notification{
		Result:        domain.NotificationResult(r.Status),
		StateCode:     r.Data.State,
		Reference:     r.Data.Reference,
		Amount:        amount,
		Currency:      r.Data.Currency,
		BankOrderCode: r.Data.BankOrderCode,
		Signature:     r.Data.Signature,
		Concept:       r.Data.Concept,
		Description:   r.Data.Description,
		CreatedAt:     r.Data.CreatedAt,
		FailureReason: r.Data.FailureReason,
	}
}

// WebhookAckResponse acknowledges a processed notification.
type WebhookAckResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// RegisterProductsRequest is the request body for the CRM catalog push.
type RegisterProductsRequest struct {
	Products []ProductDTO `json:"products" binding:"required,min=1,dive"`
}

// ProductDTO is a catalog item mirrored into the CRM.
type ProductDTO struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	Currency string `json:"currency" binding:"required,len=3"`
	ImageURL string `json:"image_url,omitempty"`
	Active   bool   `json:"active"`
}

// ToDomain converts the request to domain products.
func (r RegisterProductsRequest) ToDomain() []domain.Product {
	products := make([]domain.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, domain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Currency: p.Currency,
			ImageURL: p.ImageURL,
			Active:   p.Active,
		})
	}
	return products
}

// RegisterProductsResponse reports how many products were accepted for sync.
type RegisterProductsResponse struct {
	Accepted int `json:"accepted"`
}

// OrderResponse is the response body for an order lookup.
type OrderResponse struct {
	Reference        string  `json:"reference"`
	Amount           int64   `json:"amount"`
	Currency         string  `json:"currency"`
	Concept          string  `json:"concept"`
	Status           string  `json:"status"`
	GatewayOrderCode string  `json:"gateway_order_code,omitempty"`
	FailureReason    *string `json:"failure_reason,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
