package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WalletClient fala com o wallet-service durante a liquidação:
// commit da reserva (stake gasto), refund (push) e payout (retorno).
type WalletClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewWalletClient(base string) *WalletClient {
	return &WalletClient{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 2 * time.Second},
	}
}

func (c *WalletClient) post(ctx context.Context, path string, payload any) error {
	body, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("wallet %s http %d", path, res.StatusCode)
	}
	return nil
}

func (c *WalletClient) Commit(ctx context.Context, userID, betID string) error {
	return c.post(ctx, "/wallet/commit", map[string]any{
		"userId": userID, "external_ref": betID,
	})
}

func (c *WalletClient) Refund(ctx context.Context, userID, betID string) error {
	return c.post(ctx, "/wallet/refund", map[string]any{
		"userId": userID, "external_ref": betID,
	})
}

func (c *WalletClient) Payout(ctx context.Context, userID string, amountCents int64, betID string) error {
	return c.post(ctx, "/wallet/payout", map[string]any{
		"userId": userID, "amount_cents": amountCents, "bet_id": betID,
	})
}
