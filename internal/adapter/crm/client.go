package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/config"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"

	"github.com/rs/zerolog"
)

// Header carrying the static CRM API key.
const apiKeyHeader = "X-Api-Key"

// Client implements ports.CRMClient against the marketing platform's
// batch-upsert endpoints. Upserts are idempotent on the CRM side, keyed
// by product/order identifier.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a CRM client. A nil httpClient gets a 10s-timeout default.
func New(cfg config.CRMConfig, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		log:     log,
	}
}

type productUpsert struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Currency string `json:"currency"`
	ImageURL string `json:"image_url,omitempty"`
	Active   bool   `json:"active"`
}

// UpsertProducts pushes the product catalog snapshot.
func (c *Client) UpsertProducts(ctx context.Context, products []domain.Product) error {
	batch := make([]productUpsert, 0, len(products))
	for _, p := range products {
		batch = append(batch, productUpsert{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Currency: p.Currency,
			ImageURL: p.ImageURL,
			Active:   p.Active,
		})
	}
	return c.post(ctx, "/v1/products/batch", map[string]any{"products": batch})
}

type orderUpsert struct {
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Concept   string `json:"concept,omitempty"`
	UpdatedAt string `json:"updated_at"`
}

// UpsertOrder pushes an order snapshot.
func (c *Client) UpsertOrder(ctx context.Context, order *domain.Order) error {
	body := map[string]any{"orders": []orderUpsert{{
		Reference: order.Reference,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    string(order.Status),
		Concept:   order.Concept,
		UpdatedAt: order.UpdatedAt.UTC().Format(time.RFC3339),
	}}}
	return c.post(ctx, "/v1/orders/batch", body)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal crm batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build crm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("crm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("crm %s: %s", resp.Status, string(raw))
	}
	return nil
}
