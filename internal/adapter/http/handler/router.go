package handler

import (
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/middleware"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	WebhookSvc     ports.WebhookService
	CRMSvc         ports.CRMSyncService // nil = CRM sync disabled
	OrderRepo      ports.OrderRepository
	HealthCheckers []ports.HealthChecker
	EnableTestCard bool // card endpoint is only routed outside release mode
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	api := r.Group("/api")

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	payments := api.Group("/payments")
	{
		payments.POST("/link", paymentHandler.CreateLink)
		payments.POST("/webhook", webhookHandler.Receive)
		if deps.EnableTestCard {
			payments.POST("/card", paymentHandler.ProcessCard)
		}
	}

	orderHandler := NewOrderHandler(deps.OrderRepo)
	api.GET("/orders/:reference", orderHandler.GetByReference)

	if deps.CRMSvc != nil {
		crmHandler := NewCRMHandler(deps.CRMSvc)
		api.POST("/crm/products", crmHandler.RegisterProducts)
	}

	return r
}
