package domain

import "fmt"

// NotificationResult is the coarse outcome reported by the gateway envelope.
type NotificationResult string

const (
	NotificationSuccess NotificationResult = "success"
	NotificationFailed  NotificationResult = "failed"
)

// Notification is a parsed gateway webhook. It exists only for the duration
// of request processing; only its effect on Order state is persisted.
type Notification struct {
	Result        NotificationResult
	StateCode     int
	Reference     string
	Amount        int64
	Currency      string
	BankOrderCode string
	Signature     string
	Concept       string
	Description   string
	CreatedAt     string
	FailureReason *string
}

// TargetStatus resolves the order status this notification should produce.
func (n Notification) TargetStatus() (OrderStatus, bool) {
	return StatusForStateCode(n.StateCode)
}

// SignaturePayload builds the canonical string the gateway signs.
// Format: REFERENCE|STATE|AMOUNT|CURRENCY
func (n Notification) SignaturePayload() string {
	return fmt.Sprintf("%s|%d|%d|%s", n.Reference, n.StateCode, n.Amount, n.Currency)
}
