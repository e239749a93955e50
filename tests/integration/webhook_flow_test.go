package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/config"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/gateway"
	httpHandler "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/http/handler"
	redisStorage "github.com/rub3nlh/cantinax-v0.03-sub001/internal/adapter/storage/redis"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/service"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookSecret = "integration-test-secret"

// recordingCRM counts RegisterOrder calls so tests can assert that
// redeliveries never produce a second sync.
type recordingCRM struct {
	orderCalls atomic.Int64
}

func (c *recordingCRM) RegisterProducts(ctx context.Context, products []domain.Product) error {
	return nil
}

func (c *recordingCRM) RegisterOrder(ctx context.Context, order *domain.Order) error {
	c.orderCalls.Add(1)
	return nil
}

// testApp wires the full stack: real HTTP layer, services, Redis-backed
// dedupe cache (miniredis), in-memory order repo, and a stub payment gateway
// behind httptest.
type testApp struct {
	server      *httptest.Server
	gateway     *httptest.Server
	gatewayDown atomic.Bool // simulates a gateway outage
	redis       *miniredis.Miniredis
	orders      *inMemoryOrderRepo
	crm         *recordingCRM
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	app := &testApp{}

	// Stub payment gateway: token exchange + link creation.
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.gatewayDown.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		switch r.URL.Path {
		case "/oauth/token":
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-test", "expires_in": 3600})
		case "/payment-links":
			json.NewEncoder(w).Encode(map[string]any{"short_url": "https://pay.example/x/h4sh", "hash": "h4sh"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.New("debug", false)

	orders := newInMemoryOrderRepo()
	cache := redisStorage.NewNotificationCache(rdb)
	crm := &recordingCRM{}

	gwClient := gateway.New(config.GatewayConfig{
		BaseURL:      gw.URL,
		ClientID:     "client-test",
		ClientSecret: "secret-test",
	}, &http.Client{Timeout: 5 * time.Second}, log)

	verifier := service.NewHMACSignatureVerifier(webhookSecret)
	paymentSvc := service.NewPaymentService(orders, gwClient, "https://shop.example/ok", "https://shop.example/ko", 0, log)
	webhookSvc := service.NewWebhookService(orders, verifier, cache, crm, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		WebhookSvc:     webhookSvc,
		CRMSvc:         crm,
		OrderRepo:      orders,
		EnableTestCard: true,
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	app.gateway = gw
	app.redis = mr
	app.orders = orders
	app.crm = crm
	return app
}

func (a *testApp) close() {
	a.server.Close()
	a.gateway.Close()
	a.redis.Close()
}

func (a *testApp) postJSON(t *testing.T, path string, payload any) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func signPayload(reference string, state int, amount int64, currency string) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%s|%d|%d|%s", reference, state, amount, currency)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookPayload(reference string, state int, amount int64) map[string]any {
	status := "success"
	if state != domain.StateCompleted {
		status = "failed"
	}
	return map[string]any{
		"status": status,
		"data": map[string]any{
			"state":         state,
			"reference":     reference,
			"amount":        amount,
			"currency":      "EUR",
			"bankOrderCode": "BANK-9001",
			"signaturev2":   signPayload(reference, state, amount, "EUR"),
		},
	}
}

func (a *testApp) createOrder(t *testing.T, reference string, amount float64) {
	t.Helper()
	resp, body := a.postJSON(t, "/api/payments/link", map[string]any{
		"reference": reference,
		"concept":   "LaCantina meal pack",
		"amount":    amount,
		"currency":  "EUR",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create link failed: %v", body)
}

// --- Integration Tests ---

func TestIntegration_PaymentLinkThenWebhookSuccess(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-42", 2590)

	order, err := app.orders.GetByReference(context.Background(), "XLACG-42")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, "h4sh", order.GatewayHash)

	resp, body := app.postJSON(t, "/api/payments/webhook", webhookPayload("XLACG-42", domain.StateCompleted, 2590))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "SUCCEEDED", data["status"])

	order, err = app.orders.GetByReference(context.Background(), "XLACG-42")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSucceeded, order.Status)
	assert.Equal(t, "BANK-9001", order.GatewayOrderCode)
	assert.Equal(t, int64(1), app.crm.orderCalls.Load())
}

func TestIntegration_AmountRounding(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-43", 1999.6)

	order, err := app.orders.GetByReference(context.Background(), "XLACG-43")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), order.Amount)
}

func TestIntegration_DuplicateWebhookIsIdempotent(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-44", 2590)

	resp, _ := app.postJSON(t, "/api/payments/webhook", webhookPayload("XLACG-44", domain.StateCompleted, 2590))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	first, err := app.orders.GetByReference(context.Background(), "XLACG-44")
	require.NoError(t, err)
	firstUpdatedAt := first.UpdatedAt

	// Gateway redelivers the same notification.
	resp, body := app.postJSON(t, "/api/payments/webhook", webhookPayload("XLACG-44", domain.StateCompleted, 2590))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["duplicate"])

	second, err := app.orders.GetByReference(context.Background(), "XLACG-44")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSucceeded, second.Status)
	assert.Equal(t, firstUpdatedAt, second.UpdatedAt, "redelivery must not touch updated_at")
	assert.Equal(t, int64(1), app.crm.orderCalls.Load(), "redelivery must not produce a second crm sync")
}

func TestIntegration_FailureStates(t *testing.T) {
	tests := []struct {
		name  string
		state int
		want  domain.OrderStatus
	}{
		{"rejected", domain.StateRejected, domain.OrderStatusRejected},
		{"expired", domain.StateExpired, domain.OrderStatusExpired},
		{"cancelled", domain.StateCancelled, domain.OrderStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			defer app.close()

			ref := "XLACG-" + tt.name
			app.createOrder(t, ref, 2590)

			resp, _ := app.postJSON(t, "/api/payments/webhook", webhookPayload(ref, tt.state, 2590))
			require.Equal(t, http.StatusOK, resp.StatusCode)

			order, err := app.orders.GetByReference(context.Background(), ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, order.Status)
			assert.Equal(t, int64(0), app.crm.orderCalls.Load(), "failed payments are never mirrored")
		})
	}
}

func TestIntegration_WebhookUnknownReference(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/payments/webhook", webhookPayload("NO-SUCH-ORDER", domain.StateCompleted, 2590))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ORD_001", body["error_code"])
}

func TestIntegration_WebhookBadSignature(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-45", 2590)

	payload := webhookPayload("XLACG-45", domain.StateCompleted, 2590)
	payload["data"].(map[string]any)["signaturev2"] = "forged"

	resp, body := app.postJSON(t, "/api/payments/webhook", payload)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "SEC_001", body["error_code"])

	order, err := app.orders.GetByReference(context.Background(), "XLACG-45")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status, "forged notification must not move the order")
}

func TestIntegration_WebhookMalformedBody(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, err := http.Post(app.server.URL+"/api/payments/webhook", "application/json", bytes.NewReader([]byte(`{"status":`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIntegration_DuplicateReferenceRejected(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-46", 2590)

	resp, body := app.postJSON(t, "/api/payments/link", map[string]any{
		"reference": "XLACG-46",
		"concept":   "LaCantina meal pack",
		"amount":    2590,
		"currency":  "EUR",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ORD_002", body["error_code"])
}

// A gateway outage during link creation must not burn the reference: once the
// gateway is back, the same reference gets its link.
func TestIntegration_LinkRetryAfterGatewayOutage(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.gatewayDown.Store(true)
	resp, body := app.postJSON(t, "/api/payments/link", map[string]any{
		"reference": "XLACG-50",
		"concept":   "LaCantina meal pack",
		"amount":    2590,
		"currency":  "EUR",
	})
	require.Equal(t, http.StatusBadGateway, resp.StatusCode, "outage must surface as 502: %v", body)

	order, err := app.orders.GetByReference(context.Background(), "XLACG-50")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Empty(t, order.GatewayHash)

	app.gatewayDown.Store(false)
	app.createOrder(t, "XLACG-50", 2590)

	order, err = app.orders.GetByReference(context.Background(), "XLACG-50")
	require.NoError(t, err)
	assert.Equal(t, "h4sh", order.GatewayHash)
}

// The envelope status and the state code must agree; a contradicting pair is
// rejected before any state change.
func TestIntegration_WebhookContradictingEnvelope(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-51", 2590)

	payload := webhookPayload("XLACG-51", domain.StateCompleted, 2590)
	payload["status"] = "failed"

	resp, body := app.postJSON(t, "/api/payments/webhook", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])

	order, err := app.orders.GetByReference(context.Background(), "XLACG-51")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestIntegration_TestCardFlow(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/payments/card", map[string]any{
		"card_number": "4242424242424242",
		"expiry":      "12/30",
		"cvv":         "123",
		"amount":      2590,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["success"])
	assert.NotEmpty(t, data["transaction_id"])

	resp, body = app.postJSON(t, "/api/payments/card", map[string]any{
		"card_number": "1111222233334444",
		"expiry":      "12/30",
		"cvv":         "123",
		"amount":      2590,
	})
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "CARD_001", body["error_code"])
}

func TestIntegration_OrderLookup(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.createOrder(t, "XLACG-47", 2590)

	resp, err := http.Get(app.server.URL + "/api/orders/XLACG-47")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "PENDING", data["status"])
	assert.Equal(t, float64(2590), data["amount"])
}
