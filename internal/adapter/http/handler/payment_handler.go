package handler

import (
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/dto"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment-link and card endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// CreateLink handles POST /api/payments/link.
func (h *PaymentHandler) CreateLink(c *gin.Context) {
	var req dto.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	link, err := h.paymentSvc.CreatePaymentLink(c.Request.Context(), ports.LinkParams{
		Reference:     req.Reference,
		Concept:       req.Concept,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateLinkResponse{
		Reference: link.Reference,
		ShortURL:  link.ShortURL,
		Hash:      link.Hash,
	})
}

// ProcessCard handles POST /api/payments/card. Only routed outside release mode.
func (h *PaymentHandler) ProcessCard(c *gin.Context) {
	var req dto.CardPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.paymentSvc.ProcessCardPayment(c.Request.Context(), ports.CardParams{
		CardNumber: req.CardNumber,
		Expiry:     req.Expiry,
		CVV:        req.CVV,
		Amount:     req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CardPaymentResponse{
		TransactionID: result.TransactionID,
		Success:       result.Success,
	})
}
