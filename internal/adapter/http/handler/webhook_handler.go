package handler

import (
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/dto"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment gateway notifications.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Receive handles POST /api/payments/webhook. The gateway retries on any
// non-2xx response, so only errors that a retry could fix return 5xx.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	outcome, err := h.webhookSvc.HandleNotification(c.Request.Context(), req.ToNotification())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WebhookAckResponse{
		Reference: outcome.Reference,
		Status:    string(outcome.Status),
		Duplicate: outcome.Duplicate,
	})
}
