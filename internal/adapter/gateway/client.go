package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/config"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"
	"github.com/rub3nlh/cantinax-v0.03-sub001/pkg/apperror"

	"github.com/rs/zerolog"
)

// Client implements ports.GatewayClient against the external payment
// processor's token and payment-link endpoints.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client
	retry        RetryConfig
	log          zerolog.Logger
}

// New creates a gateway client. A nil httpClient gets a 10s-timeout default.
func New(cfg config.GatewayConfig, httpClient *http.Client, log zerolog.Logger) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		http:         httpClient,
		retry:        DefaultRetryConfig(),
		log:          log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Authenticate performs the client-credentials exchange. Credentials are
// checked before any network call.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", apperror.ErrMissingCredentials()
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	var token string
	err := doWithRetry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
		if err != nil {
			return fmt.Errorf("build token request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", errTransient, err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: token endpoint %s", errTransient, resp.Status)
		}
		if resp.StatusCode/100 != 2 {
			return apperror.ErrGatewayAuth(fmt.Errorf("token endpoint %s: %s", resp.Status, string(raw)))
		}

		var out tokenResponse
		if err := json.Unmarshal(raw, &out); err != nil {
			return apperror.ErrGatewayAuth(fmt.Errorf("decode token response: %w", err))
		}
		if out.AccessToken == "" {
			return apperror.ErrGatewayAuth(fmt.Errorf("empty access token"))
		}
		token = out.AccessToken
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperror.AppError); ok {
			return "", err
		}
		return "", apperror.ErrGatewayAuth(err)
	}
	return token, nil
}

type createLinkRequest struct {
	Reference     string `json:"reference"`
	Concept       string `json:"concept"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Description   string `json:"description,omitempty"`
	URLOK         string `json:"url_ok,omitempty"`
	URLKO         string `json:"url_ko,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
}

type createLinkResponse struct {
	ShortURL string `json:"short_url"`
	Hash     string `json:"hash"`
	Message  string `json:"message,omitempty"`
}

// CreateLink creates a single-use payment link.
func (c *Client) CreateLink(ctx context.Context, token string, req ports.LinkRequest) (*ports.LinkResult, error) {
	body := createLinkRequest{
		Reference:     req.Reference,
		Concept:       req.Concept,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		URLOK:         req.OKCallbackURL,
		URLKO:         req.KOCallbackURL,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal link request: %w", err))
	}

	var result *ports.LinkResult
	err = doWithRetry(ctx, c.retry, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.baseURL+"/payment-links", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build link request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Authorization", "Bearer "+token)

		resp, err := c.http.Do(httpReq)
		if err != nil {
			return fmt.Errorf("%w: %v", errTransient, err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		if resp.StatusCode >= 500 {
			return fmt.Errorf("%w: link endpoint %s", errTransient, resp.Status)
		}
		if resp.StatusCode/100 != 2 {
			remote := remoteMessage(raw, resp.Status)
			return apperror.ErrGateway(remote, fmt.Errorf("link endpoint %s", resp.Status))
		}

		var out createLinkResponse
		if err := json.Unmarshal(raw, &out); err != nil {
			return apperror.ErrGateway("malformed link response", err)
		}
		result = &ports.LinkResult{ShortURL: out.ShortURL, Hash: out.Hash}
		return nil
	})
	if err != nil {
		if _, ok := err.(*apperror.AppError); ok {
			return nil, err
		}
		return nil, apperror.ErrGateway("payment link creation failed", err)
	}

	c.log.Debug().
		Str("reference", req.Reference).
		Str("hash", result.Hash).
		Msg("payment link created at gateway")

	return result, nil
}

// remoteMessage extracts the gateway's error message, falling back to the
// HTTP status line.
func remoteMessage(raw []byte, status string) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return status
}
