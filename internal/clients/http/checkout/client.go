// Package checkout wraps the payment provider's hosted-checkout HTTP
// API: create a session, read a session's settlement status.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout bounds every provider call. A timed-out confirmation is
// treated as unconfirmed by callers.
const DefaultTimeout = 10 * time.Second

// PaymentStatusPaid is the provider's terminal settled status.
const PaymentStatusPaid = "paid"

// Client talks to the hosted-checkout API.
type Client struct {
	baseURL string
	secret  string
	httpc   *http.Client
}

// New instantiates the checkout client with sane defaults.
func New(baseURL, secretKey string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("checkout base URL is required")
	}
	if strings.TrimSpace(secretKey) == "" {
		return nil, errors.New("checkout secret key is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: baseURL, secret: strings.TrimSpace(secretKey), httpc: httpClient}, nil
}

// SessionParams describes the session to open. UnitAmount is in minor
// currency units.
type SessionParams struct {
	Currency        string
	UnitAmount      int64
	Quantity        int
	ProductName     string
	ProductImageURL string
	CustomerEmail   string
	SuccessURL      string
	CancelURL       string
	OrderReference  string
}

// Session is the provider's representation of a checkout session.
type Session struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status"`
}

// Paid reports whether the provider considers the session settled.
func (s *Session) Paid() bool {
	return s != nil && s.PaymentStatus == PaymentStatusPaid
}

// CreateSession opens a payment-mode checkout session.
func (c *Client) CreateSession(ctx context.Context, params SessionParams) (*Session, error) {
	if c == nil || c.httpc == nil {
		return nil, errors.New("checkout client not configured")
	}
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("currency", strings.ToLower(params.Currency))
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][quantity]", strconv.Itoa(params.Quantity))
	form.Set("line_items[0][price_data][currency]", strings.ToLower(params.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.UnitAmount, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.ProductName)
	if params.ProductImageURL != "" {
		form.Set("line_items[0][price_data][product_data][images][0]", params.ProductImageURL)
	}
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.OrderReference != "" {
		form.Set("metadata[order_id]", params.OrderReference)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// GetSession retrieves a session by id.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if c == nil || c.httpc == nil {
		return nil, errors.New("checkout client not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errors.New("checkout session id is required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, fmt.Errorf("build checkout request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Session, error) {
	req.Header.Set("Authorization", "Bearer "+c.secret)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call checkout API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read checkout response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("checkout API error: %s", errorMessage(body, resp.Status))
	}
	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}
	return &session, nil
}

func errorMessage(body []byte, fallback string) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
			return msg
		}
	}
	return fallback
}
