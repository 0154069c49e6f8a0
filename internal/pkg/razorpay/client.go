package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/musickeys/backend/internal/pkg/env"
)

const defaultAPIBaseURL = "https://api.razorpay.com/v1"

const (
	EnvironmentLive = "live"
	EnvironmentTest = "test"
)

// ErrNotConfigured is returned when the Razorpay key pair is missing.
var ErrNotConfigured = errors.New("razorpay is not configured, check RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET")

// ErrInvalidAmount is returned for non-positive order amounts before any
// gateway call is made.
var ErrInvalidAmount = errors.New("invalid amount provided")

// ErrTimeout wraps gateway timeouts. Order creation is never retried blindly
// on timeout; callers decide whether to retry with a fresh receipt.
var ErrTimeout = errors.New("razorpay request timed out")

// APIError is a non-2xx response from the gateway, classified into a
// human-readable message by status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("razorpay: status=%d: %s", e.StatusCode, e.Message)
}

// Client talks to the Razorpay Orders API.
type Client struct {
	KeyID      string
	KeySecret  string
	APIBaseURL string
	HTTPClient *http.Client
}

// NewClientFromEnv builds a client from RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET.
// A key id without the rzp_test_/rzp_live_ prefix is treated as a test key.
func NewClientFromEnv() *Client {
	keyID := strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_ID", ""))
	if keyID != "" && !strings.HasPrefix(keyID, "rzp_test_") && !strings.HasPrefix(keyID, "rzp_live_") {
		keyID = "rzp_test_" + keyID
	}

	return &Client{
		KeyID:      keyID,
		KeySecret:  strings.TrimSpace(env.GetEnv("RAZORPAY_KEY_SECRET", "")),
		APIBaseURL: strings.TrimRight(env.GetEnv("RAZORPAY_API_BASE_URL", defaultAPIBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// IsConfigured reports whether both credentials are present.
func (c *Client) IsConfigured() bool {
	return c.KeyID != "" && c.KeySecret != ""
}

// Environment reports "live" or "test" based on the configured key id.
func (c *Client) Environment() string {
	if strings.HasPrefix(c.KeyID, "rzp_live_") {
		return EnvironmentLive
	}
	return EnvironmentTest
}

// Secret returns the shared signing secret used for payment verification.
func (c *Client) Secret() []byte {
	if c.KeySecret == "" {
		return nil
	}
	return []byte(c.KeySecret)
}

// OrderRequest describes the order to create. Amount is in major currency
// units (rupees).
type OrderRequest struct {
	Amount    float64
	Currency  string
	PlanID    string
	UserID    string
	UserEmail string
}

// Order is the gateway's view of a created order. Amount is in minor units
// (paise).
type Order struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Status   string            `json:"status"`
	Notes    map[string]string `json:"notes"`
}

// CreateOrder asks the gateway to create a payment order. It validates the
// amount first, converts to paise and attaches a unique receipt token plus
// the environment tag. No ledger interaction: an order is not a payment.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	userID := req.UserID
	if userID == "" {
		userID = "anonymous"
	}
	userEmail := req.UserEmail
	if userEmail == "" {
		userEmail = "unknown"
	}

	body := map[string]interface{}{
		"amount":   int64(math.Round(req.Amount * 100)),
		"currency": currency,
		"receipt":  newReceipt(),
		"notes": map[string]string{
			"planId":      req.PlanID,
			"userId":      userID,
			"userEmail":   userEmail,
			"environment": c.Environment(),
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.KeyID, c.KeySecret)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyError(resp.StatusCode, raw)
	}

	var out Order
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("razorpay: invalid order response: %w", err)
	}
	if out.ID == "" {
		return nil, errors.New("razorpay: order response has no id")
	}
	return &out, nil
}

// MockOrder fabricates a test-only order without calling the gateway.
func MockOrder(amount float64, currency, planID, userID string) *Order {
	if currency == "" {
		currency = "INR"
	}
	if userID == "" {
		userID = "anonymous"
	}
	now := time.Now().UnixMilli()
	return &Order{
		ID:       fmt.Sprintf("mock_order_%d", now),
		Amount:   int64(math.Round(amount * 100)),
		Currency: currency,
		Receipt:  fmt.Sprintf("mock_receipt_%d", now),
		Status:   "created",
		Notes: map[string]string{
			"planId": planID,
			"userId": userID,
			"mock":   "true",
		},
	}
}

// newReceipt builds a time-based receipt token with a random suffix.
func newReceipt() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), suffix)
}

func classifyError(statusCode int, raw []byte) error {
	msg := gatewayMessage(raw)
	switch statusCode {
	case http.StatusUnauthorized:
		msg = "Razorpay authentication failed. Please check your API keys."
	case http.StatusBadRequest:
		msg = "Invalid request parameters."
	case http.StatusForbidden:
		msg = "Access denied. Please check your Razorpay account status."
	default:
		if msg == "" {
			msg = "Failed to create order"
		}
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}

// gatewayMessage extracts error.description from a Razorpay error body.
func gatewayMessage(raw []byte) string {
	var parsed struct {
		Error struct {
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return ""
	}
	return strings.TrimSpace(parsed.Error.Description)
}
