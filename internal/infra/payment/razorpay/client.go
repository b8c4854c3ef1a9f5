package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/model"
	rzp "github.com/razorpay/razorpay-go"
)

var ErrNotConfigured = errors.New("razorpay credentials are not configured")

type CreateOrderRequest struct {
	Amount   model.Paise `json:"amount"`
	Currency string      `json:"currency"`
	Receipt  string      `json:"receipt"`
}

// IGateway is the part of the payment provider the checkout needs.
type IGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*model.GatewayOrder, error)
	KeyID() string
	Configured() bool
}

// GatewayError is a failed call into the provider. Error() is the provider's message.
type GatewayError struct {
	Description string
	Err         error
}

func (e *GatewayError) Error() string {
	if e.Description != "" {
		return e.Description
	}
	return "razorpay request failed"
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Client wraps the razorpay-go SDK. The SDK has no context support,
// so each call runs on its own goroutine and the caller stops waiting on ctx.Done.
type Client struct {
	keyID     string
	keySecret string
	api       *rzp.Client
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		if baseURL != "" {
			client.api.Request.BaseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

func NewClient(keyID, keySecret string, timeout time.Duration, opts ...Option) *Client {
	api := rzp.NewClient(keyID, keySecret)
	seconds := int16(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	api.SetTimeout(seconds)

	c := &Client{keyID: keyID, keySecret: keySecret, api: api}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

// CreateOrder posts /v1/orders. Amount is always paise.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*model.GatewayOrder, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	data := map[string]interface{}{
		"amount":   int64(req.Amount),
		"currency": req.Currency,
		"receipt":  req.Receipt,
	}

	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := c.api.Order.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("razorpay create order: %w", ctx.Err())
	case res = <-done:
	}
	if res.err != nil {
		return nil, &GatewayError{Description: res.err.Error(), Err: res.err}
	}
	return toGatewayOrder(res.body)
}

func toGatewayOrder(body map[string]interface{}) (*model.GatewayOrder, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("invalid razorpay order payload: %w", err)
	}
	var order model.GatewayOrder
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("invalid razorpay order payload: %w", err)
	}
	if order.ID == "" {
		return nil, errors.New("razorpay order payload has no id")
	}
	return &order, nil
}
