package handler

import (
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/dto"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/response"

	"github.com/gin-gonic/gin"
)

// CRMHandler exposes the catalog push used by the storefront on deploy.
type CRMHandler struct {
	crmSvc ports.CRMSyncService
}

// NewCRMHandler creates a new CRMHandler.
func NewCRMHandler(crmSvc ports.CRMSyncService) *CRMHandler {
	return &CRMHandler{crmSvc: crmSvc}
}

// RegisterProducts handles POST /api/crm/products. Sync is best-effort, so
// the endpoint acknowledges acceptance rather than delivery.
func (h *CRMHandler) RegisterProducts(c *gin.Context) {
	var req dto.RegisterProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	products := req.ToDomain()
	if err := h.crmSvc.RegisterProducts(c.Request.Context(), products); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RegisterProductsResponse{Accepted: len(products)})
}
