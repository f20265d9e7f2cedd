// Package razorpay is a thin client for the Razorpay Orders API. It only
// creates pending payment orders; the payer completes payment client-side
// and this backend never reconciles the outcome.
package razorpay

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/vastra/pkg/httpx"
)

// Currency is fixed: all catalog prices are rupees, amounts are paise.
const Currency = "INR"

// Order is the gateway's handle for a pending payment, returned verbatim
// to the browser so it can open the checkout widget.
type Order struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Client talks to the Razorpay REST API with key-pair basic auth.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
	timeout   time.Duration
}

func New(keyID, keySecret, baseURL string) *Client {
	return &Client{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		timeout:   15 * time.Second,
	}
}

// CreateOrder creates a pending payment order for the given amount in
// paise. No retry: any transport or gateway failure surfaces to the caller.
func (c *Client) CreateOrder(ctx context.Context, amount int64, receipt string) (Order, error) {
	resp, err := httpx.Post(c.baseURL+"/v1/orders").
		BasicAuth(c.keyID, c.keySecret).
		Body(map[string]any{
			"amount":   amount,
			"currency": Currency,
			"receipt":  receipt,
		}).
		Timeout(c.timeout).
		Send(ctx)
	if err != nil {
		return Order{}, fmt.Errorf("razorpay: create order: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return Order{}, fmt.Errorf("razorpay: create order: %w", err)
	}

	var order Order
	if err := resp.JSON(&order); err != nil {
		return Order{}, fmt.Errorf("razorpay: create order: %w", err)
	}
	return order, nil
}
