// Package payments is the HTTP client for the external checkout provider,
// plus webhook signature verification and event decoding.
package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"weatherstay/internal/pkg/config"
)

var ErrGateway = errors.New("payments: checkout session creation failed")

// CheckoutParams describes one booking to charge. Amount is in major
// currency units; conversion to minor units happens here and nowhere else,
// so rounding error cannot compound across callers.
type CheckoutParams struct {
	Amount      float64
	Currency    string
	Description string
	// Reference is echoed back by the provider; the creation flow passes
	// the room id.
	Reference string
}

// CheckoutSession is the provider's handle for a payment flow. ID correlates
// the eventual webhook event back to a booking; URL is where the user
// completes payment.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type Client struct {
	base       string
	apiKey     string
	successURL string
	cancelURL  string
	hc         *http.Client
}

func NewClient(cfg config.PaymentsConfig) *Client {
	return &Client{
		base:       cfg.BaseURL,
		apiKey:     cfg.APIKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		hc:         &http.Client{Timeout: cfg.Timeout},
	}
}

type createSessionRequest struct {
	Mode            string `json:"mode"`
	Currency        string `json:"currency"`
	Description     string `json:"description"`
	UnitAmount      int64  `json:"unit_amount"`
	Quantity        int    `json:"quantity"`
	SuccessURL      string `json:"success_url"`
	CancelURL       string `json:"cancel_url"`
	ClientReference string `json:"client_reference_id"`
}

// CreateCheckoutSession opens a payment flow for params.Amount and returns
// the provider's session reference and redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	reqBody := createSessionRequest{
		Mode:            "payment",
		Currency:        params.Currency,
		Description:     params.Description,
		UnitAmount:      MinorUnits(params.Amount),
		Quantity:        1,
		SuccessURL:      c.successURL,
		CancelURL:       c.cancelURL,
		ClientReference: params.Reference,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", ErrGateway, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/checkout/sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode, msg)
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrGateway, err)
	}
	if session.ID == "" || session.URL == "" {
		return nil, fmt.Errorf("%w: incomplete session in response", ErrGateway)
	}
	return &session, nil
}

// MinorUnits rounds a major-unit amount to the smallest currency unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
