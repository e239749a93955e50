package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order's payment.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusSucceeded OrderStatus = "SUCCEEDED"
	OrderStatusRejected  OrderStatus = "REJECTED"
	OrderStatusExpired   OrderStatus = "EXPIRED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsTerminal returns true if no further transition is permitted out of s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusSucceeded, OrderStatusRejected, OrderStatusExpired, OrderStatusCancelled:
		return true
	}
	return false
}

// Gateway state codes carried in webhook notifications.
const (
	StateRejected  = 2 // rejected by the processor
	StateExpired   = 3 // payment link expired
	StateCancelled = 4 // cancelled by the payer
	StateCompleted = 5 // payment completed
)

// StatusForStateCode maps a gateway state code to the target order status.
// The second return value is false for unrecognized codes.
func StatusForStateCode(code int) (OrderStatus, bool) {
	switch code {
	case StateCompleted:
		return OrderStatusSucceeded, true
	case StateRejected:
		return OrderStatusRejected, true
	case StateExpired:
		return OrderStatusExpired, true
	case StateCancelled:
		return OrderStatusCancelled, true
	}
	return "", false
}

// Order correlates a payment link with the gateway notifications that follow.
// Created PENDING when a link is requested; mutated only by the webhook flow;
// never deleted.
type Order struct {
	ID               uuid.UUID   `json:"id"`
	Reference        string      `json:"reference"` // merchant-assigned, unique
	Amount           int64       `json:"amount"`    // integer minor units
	Currency         string      `json:"currency"`
	Concept          string      `json:"concept"`
	Description      string      `json:"description,omitempty"`
	Status           OrderStatus `json:"status"`
	GatewayHash      string      `json:"gateway_hash,omitempty"`       // payment link identifier
	GatewayOrderCode string      `json:"gateway_order_code,omitempty"` // bank order code from the webhook
	FailureReason    *string     `json:"failure_reason,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsTerminal returns true if the order's payment reached a final state.
func (o *Order) IsTerminal() bool {
	return o.Status.IsTerminal()
}
