package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/config"
	"github.com/performlikemj/neighborhood-united-sub004/internal/pkg/errs"

	"github.com/google/uuid"
)

// Client is the thin request/response adapter to the external payment
// processor. The processor is opaque: we create sessions, expire them, and
// request refunds; everything else (hosted checkout, webhook delivery) is its
// side of the contract.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
}

type RefundReceipt struct {
	ReceiptID   string `json:"receiptId"`
	AmountCents int64  `json:"amountCents"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, orderID uuid.UUID, amountCents int64, currency string) (*CheckoutSession, error) {
	body := map[string]any{
		"orderId":     orderID.String(),
		"amountCents": amountCents,
		"currency":    currency,
	}

	var session CheckoutSession
	if err := c.post(ctx, "/v1/checkout/sessions", body, &session); err != nil {
		return nil, errs.Mark(err, errs.ErrCheckoutUnavailable)
	}
	if session.SessionID == "" || session.RedirectURL == "" {
		return nil, errs.Mark(errs.New("processor returned incomplete session"), errs.ErrCheckoutUnavailable)
	}
	return &session, nil
}

// ExpireSession invalidates a session at the processor so it can no longer
// complete into a payment. Used when a cancel lands while a session is live
// and when a retry supersedes a stale session.
func (c *Client) ExpireSession(ctx context.Context, sessionID string) error {
	return c.post(ctx, "/v1/checkout/sessions/"+sessionID+"/expire", nil, nil)
}

func (c *Client) Refund(ctx context.Context, sessionID string, amountCents int64) (*RefundReceipt, error) {
	body := map[string]any{
		"sessionId":   sessionID,
		"amountCents": amountCents,
	}

	var receipt RefundReceipt
	if err := c.post(ctx, "/v1/refunds", body, &receipt); err != nil {
		return nil, errs.Mark(err, errs.ErrRefundFailed)
	}
	return &receipt, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode processor request")
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return errs.Wrap(err, "failed to build processor request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "processor request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("processor returned %d: %s", resp.StatusCode, snippet))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errs.Wrap(err, "failed to decode processor response")
		}
	}
	return nil
}
