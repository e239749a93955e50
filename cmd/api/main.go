package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/config"
	crmClient "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/crm"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/gateway"
	httpHandler "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/handler"
	pgStorage "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/storage/postgres"
	redisStorage "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/storage/redis"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/service"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/logger"
)

// Simulated processor latency for the test-card endpoint.
const cardProcessingDelay = 2 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting CantinaX payments service")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories and caches
	orderRepo := pgStorage.NewOrderRepo(pool)
	notificationCache := redisStorage.NewNotificationCache(rdb)

	// External clients
	gwClient := gateway.New(cfg.Gateway, &http.Client{Timeout: cfg.Gateway.Timeout}, log)

	var crmSvc ports.CRMSyncService
	if cfg.CRM.Enabled {
		crm := crmClient.New(cfg.CRM, &http.Client{Timeout: 10 * time.Second}, log)
		crmSvc = service.NewCRMSyncService(crm, log)
		log.Info().Str("base_url", cfg.CRM.BaseURL).Msg("CRM sync enabled")
	}

	// Signature verification: bypass only via explicit flag, never in release.
	var verifier ports.SignatureVerifier
	if cfg.Webhook.SkipSignatureCheck {
		verifier = service.NewInsecureSkipVerifier(log)
	} else {
		verifier = service.NewHMACSignatureVerifier(cfg.Webhook.SecretKey)
	}

	// Business services
	okURL := strings.TrimRight(cfg.Gateway.CallbackBaseURL, "/") + "/payment/ok"
	koURL := strings.TrimRight(cfg.Gateway.CallbackBaseURL, "/") + "/payment/ko"
	paymentSvc := service.NewPaymentService(orderRepo, gwClient, okURL, koURL, cardProcessingDelay, log)
	webhookSvc := service.NewWebhookService(orderRepo, verifier, notificationCache, crmSvc, log)

	// Health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		WebhookSvc:     webhookSvc,
		CRMSvc:         crmSvc,
		OrderRepo:      orderRepo,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		EnableTestCard: cfg.Server.Mode != "release",
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
