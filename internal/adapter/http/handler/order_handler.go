package handler

import (
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/dto"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/apperror"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes order status lookups for the storefront.
type OrderHandler struct {
	orders ports.OrderRepository
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders ports.OrderRepository) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GetByReference handles GET /api/orders/:reference. The storefront polls
// this while waiting for the gateway callback to land.
func (h *OrderHandler) GetByReference(c *gin.Context) {
	reference := c.Param("reference")

	order, err := h.orders.GetByReference(c.Request.Context(), reference)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if order == nil {
		response.Error(c, apperror.ErrOrderNotFound(reference))
		return
	}

	response.OK(c, dto.OrderResponse{
		Reference:        order.Reference,
		Amount:           order.Amount,
		Currency:         order.Currency,
		Concept:          order.Concept,
		Status:           string(order.Status),
		GatewayOrderCode: order.GatewayOrderCode,
		FailureReason:    order.FailureReason,
		CreatedAt:        order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        order.UpdatedAt.Format(time.RFC3339),
	})
}
