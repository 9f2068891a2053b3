package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ErrInvalidTxHash is returned by Deposit when the transaction hash is not a
// 0x-prefixed 32-byte hex string.
var ErrInvalidTxHash = errors.New("txHash must be a 32-byte 0x-prefixed hex string")

// Balance returns the payer's PathUSD balance as reported by the gateway.
// The result is the raw JSON object; its exact fields are gateway-defined.
func (c *Client) Balance(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "/v1/balance")
}

// Models lists the models available through the gateway with their pricing.
func (c *Client) Models(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "/v1/models")
}

// Usage returns the payer's usage history.
func (c *Client) Usage(ctx context.Context) (map[string]any, error) {
	return c.get(ctx, "/v1/usage")
}

// Deposit registers a PathUSD deposit after the transaction has been sent
// on-chain. The hash is checked for the canonical 32-byte form before any
// network activity.
func (c *Client) Deposit(ctx context.Context, txHash string) (map[string]any, error) {
	raw, err := hexutil.Decode(txHash)
	if err != nil || len(raw) != common.HashLength {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidTxHash, txHash)
	}

	body, _, err := c.transport.Post(ctx, "/v1/deposit", map[string]string{"txHash": txHash})
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

func (c *Client) get(ctx context.Context, path string) (map[string]any, error) {
	body, _, err := c.transport.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeObject(body)
}

// decodeObject parses a successful response body. A 2xx body that is not a
// JSON object is reported as an error rather than treated as empty; the
// lenient skip policy applies only to individual stream events.
func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("malformed gateway response: %w", err)
	}
	return out, nil
}
