// Package stripe is a minimal hosted-checkout client. It speaks the
// form-encoded checkout-sessions API directly and verifies webhook
// signatures; nothing else of the provider surface is needed here.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client calls the hosted checkout API
type Client struct {
	apiKey        string
	webhookSecret string
	client        *http.Client
	baseURL       string
}

// NewClient creates a new checkout client
func NewClient(apiKey, webhookSecret string) *Client {
	return &Client{
		apiKey:        apiKey,
		webhookSecret: webhookSecret,
		client:        &http.Client{Timeout: 30 * time.Second},
		baseURL:       "https://api.stripe.com/v1",
	}
}

// IsConfigured checks if the client has credentials
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// CheckoutSession is the provider's view of a hosted checkout session.
type CheckoutSession struct {
	ID            string  `json:"id"`
	URL           string  `json:"url"`
	AmountTotal   int64   `json:"amount_total"`
	Currency      string  `json:"currency"`
	PaymentStatus string  `json:"payment_status"`
	Status        string  `json:"status"`
	Amount        float64 `json:"-"`
}

// SessionRequest describes the checkout session to create. Amount is in
// major currency units; the wire format wants minor units.
type SessionRequest struct {
	Amount      float64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CreateSession creates a hosted checkout session
func (c *Client) CreateSession(ctx context.Context, req SessionRequest) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", req.Currency)
	form.Set("line_items[0][price_data][product_data][name]", req.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(int64(math.Round(req.Amount*100)), 10))
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	session, err := c.do(ctx, http.MethodPost, "/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	session.Amount = float64(session.AmountTotal) / 100
	return session, nil
}

// GetSession fetches the current state of a checkout session
func (c *Client) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	session, err := c.do(ctx, http.MethodGet, "/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, err
	}
	session.Amount = float64(session.AmountTotal) / 100
	return session, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*CheckoutSession, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("checkout provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &session, nil
}

// WebhookEvent is a verified provider callback.
type WebhookEvent struct {
	Type          string `json:"type"`
	SessionID     string `json:"-"`
	PaymentStatus string `json:"-"`
	Status        string `json:"-"`
}

type webhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string `json:"id"`
			PaymentStatus string `json:"payment_status"`
			Status        string `json:"status"`
		} `json:"object"`
	} `json:"data"`
}

// ConstructEvent verifies the webhook signature and parses the payload.
// Invalid or missing signatures fail before any payload field is read.
func (c *Client) ConstructEvent(payload []byte, sigHeader string) (*WebhookEvent, error) {
	if err := verifySignature(payload, sigHeader, c.webhookSecret, time.Now()); err != nil {
		return nil, err
	}

	var parsed webhookPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}

	return &WebhookEvent{
		Type:          parsed.Type,
		SessionID:     parsed.Data.Object.ID,
		PaymentStatus: parsed.Data.Object.PaymentStatus,
		Status:        parsed.Data.Object.Status,
	}, nil
}
