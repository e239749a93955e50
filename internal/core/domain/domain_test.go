package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForStateCode(t *testing.T) {
	tests := []struct {
		code   int
		status OrderStatus
		known  bool
	}{
		{StateCompleted, OrderStatusSucceeded, true},
		{StateRejected, OrderStatusRejected, true},
		{StateExpired, OrderStatusExpired, true},
		{StateCancelled, OrderStatusCancelled, true},
		{0, "", false},
		{1, "", false},
		{6, "", false},
		{-5, "", false},
	}

	for _, tt := range tests {
		status, known := StatusForStateCode(tt.code)
		assert.Equal(t, tt.known, known, "code %d", tt.code)
		assert.Equal(t, tt.status, status, "code %d", tt.code)
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.True(t, OrderStatusSucceeded.IsTerminal())
	assert.True(t, OrderStatusRejected.IsTerminal())
	assert.True(t, OrderStatusExpired.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatus("UNKNOWN").IsTerminal())
}

func TestOrder_IsTerminal(t *testing.T) {
	o := &Order{Status: OrderStatusPending}
	assert.False(t, o.IsTerminal())

	o.Status = OrderStatusCancelled
	assert.True(t, o.IsTerminal())
}

func TestNotification_TargetStatus(t *testing.T) {
	n := Notification{Result: NotificationSuccess, StateCode: StateCompleted}
	status, ok := n.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, OrderStatusSucceeded, status)

	n = Notification{Result: NotificationFailed, StateCode: 99}
	_, ok = n.TargetStatus()
	assert.False(t, ok)
}

func TestNotification_SignaturePayload(t *testing.T) {
	n := Notification{
		Reference: "ORD-1",
		StateCode: StateCompleted,
		Amount:    10000,
		Currency:  "EUR",
	}
	assert.Equal(t, "ORD-1|5|10000|EUR", n.SignaturePayload())
}
