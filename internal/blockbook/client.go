// Package blockbook is a thin JSON-RPC client for Blockbook-compatible
// endpoints (bb_getaddress, bb_gettickers).
package blockbook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/ratelimit"

	"github.com/goodnatureofminers/txledger7000-backend/internal/model"
)

type (
	// Metrics records metrics for RPC calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Client calls a Blockbook endpoint over HTTP. Calls are rate limited so a
// per-transaction ticker loop cannot hammer the endpoint.
type Client struct {
	http    *resty.Client
	rl      ratelimit.Limiter
	metrics Metrics
}

// NewClient constructs a rate-limited, instrumented Blockbook client.
func NewClient(endpoint string, timeout time.Duration, rps int, metrics Metrics) *Client {
	if rps < 1 {
		rps = 1
	}
	httpClient := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:    httpClient,
		rl:      ratelimit.New(rps),
		metrics: metrics,
	}
}

// GetAddress fetches the balance and full transaction history of an address.
// Blockbook returns transactions newest-first.
func (c *Client) GetAddress(ctx context.Context, address string) (result *model.AddressResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("bb_getaddress", err, started)
	}()

	params := []any{
		address,
		map[string]string{"page": "1", "size": "1000", "fromHeight": "0", "details": "txs"},
	}

	var out model.AddressResult
	if err = c.call(ctx, "bb_getaddress", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTickers fetches the fiat rate snapshot quoted at a Unix timestamp.
func (c *Client) GetTickers(ctx context.Context, timestamp int64) (tickers *model.Tickers, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("bb_gettickers", err, started)
	}()

	params := []any{
		map[string]int64{"timestamp": timestamp},
	}

	var out model.Tickers
	if err = c.call(ctx, "bb_gettickers", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	c.rl.Take()

	var envelope rpcEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(rpcRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: params}).
		SetResult(&envelope).
		Post("")
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: unexpected status %s", method, resp.Status())
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: rpc error %d: %s", method, envelope.Error.Code, envelope.Error.Message)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("%s: empty result", method)
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}
