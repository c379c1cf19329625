// Package client is the dashboard's data-fetch layer: typed accessors
// over the REST API plus a polling scheduler. Accessors never propagate
// failures; they log and return nil so callers treat "no data" as a
// normal, renderable state.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client performs single-shot fetches against the dashboard API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New creates a Client for the API at baseURL. The underlying HTTP
// client carries no timeout; cancellation comes from the caller's
// context (usually the scheduler's).
func New(baseURL string, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        log,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api error: %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Health reports whether the API answers its health check.
func (c *Client) Health(ctx context.Context) bool {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/api/health", &body); err != nil {
		c.log.Warnw("health check failed", "error", err)
		return false
	}
	return body.Status == "ok"
}

// BotStatus fetches the current bot status, or nil when unavailable.
func (c *Client) BotStatus(ctx context.Context) *BotStatus {
	var wire botStatusWire
	if err := c.getJSON(ctx, "/api/bot/status", &wire); err != nil {
		c.log.Warnw("failed to get bot status", "error", err)
		return nil
	}

	status := &BotStatus{
		Status:        wire.Status,
		IsFrozen:      wire.IsFrozen,
		LastTradeTime: big.NewInt(wire.LastTradeTime),
	}
	var ok bool
	if status.TotalRevenue, ok = widen(wire.TotalRevenue); !ok {
		c.log.Warnw("bad totalRevenue in status", "value", wire.TotalRevenue)
		return nil
	}
	if status.TotalLoss, ok = widen(wire.TotalLoss); !ok {
		c.log.Warnw("bad totalLoss in status", "value", wire.TotalLoss)
		return nil
	}
	if status.LastProfit, ok = widen(wire.LastProfit); !ok {
		c.log.Warnw("bad lastProfit in status", "value", wire.LastProfit)
		return nil
	}
	return status
}

// Diagnostics fetches the derived diagnostics summary, or nil.
func (c *Client) Diagnostics(ctx context.Context) *Diagnostics {
	var wire diagnosticsWire
	if err := c.getJSON(ctx, "/api/bot/diagnostics", &wire); err != nil {
		c.log.Warnw("failed to get diagnostics", "error", err)
		return nil
	}

	profit, ok := widen(wire.Profit)
	if !ok {
		c.log.Warnw("bad profit in diagnostics", "value", wire.Profit)
		return nil
	}
	slippage, ok := widen(wire.Slippage)
	if !ok {
		c.log.Warnw("bad slippage in diagnostics", "value", wire.Slippage)
		return nil
	}
	return &Diagnostics{
		Chain:    wire.Chain,
		Profit:   profit,
		Slippage: slippage,
		Oracle:   wire.Oracle,
		Error:    wire.Error,
	}
}

// Balances fetches the contract token balances, or nil.
func (c *Client) Balances(ctx context.Context) *Balances {
	var wire balancesWire
	if err := c.getJSON(ctx, "/api/bot/balances", &wire); err != nil {
		c.log.Warnw("failed to get balances", "error", err)
		return nil
	}

	balances := &Balances{Tokens: wire.Tokens}
	for _, raw := range wire.Balances {
		value, ok := widen(raw)
		if !ok {
			c.log.Warnw("bad balance value", "value", raw)
			return nil
		}
		balances.Balances = append(balances.Balances, value)
	}
	return balances
}

// Transactions fetches up to limit history rows, or nil. A limit of 0
// uses the server default.
func (c *Client) Transactions(ctx context.Context, limit int) []Transaction {
	path := "/api/transactions"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var wire []transactionWire
	if err := c.getJSON(ctx, path, &wire); err != nil {
		c.log.Warnw("failed to get transactions", "error", err)
		return nil
	}

	txs := make([]Transaction, 0, len(wire))
	for _, w := range wire {
		amount, err := decimal.NewFromString(w.Amount)
		if err != nil {
			c.log.Warnw("bad amount in transaction", "txHash", w.TxHash, "value", w.Amount)
			return nil
		}
		txs = append(txs, Transaction{
			ID:      w.ID,
			TxHash:  w.TxHash,
			Date:    w.Date,
			Type:    w.Type,
			Amount:  amount,
			GasUsed: w.GasUsed,
			Status:  w.Status,
		})
	}
	return txs
}

// BotConfig fetches the stored configuration, or nil. A fresh store has
// no configuration, so nil is the common case.
func (c *Client) BotConfig(ctx context.Context) *BotConfig {
	var wire botConfigWire
	if err := c.getJSON(ctx, "/api/bot/config", &wire); err != nil {
		c.log.Warnw("failed to get bot config", "error", err)
		return nil
	}
	return &BotConfig{
		ID:                wire.ID,
		SlippageTolerance: wire.SlippageTolerance,
		USDCAddress:       wire.USDCAddress,
		WETHAddress:       wire.WETHAddress,
		ContractAddress:   wire.ContractAddress,
		VaultAddress:      wire.VaultAddress,
		CooldownPeriod:    wire.CooldownPeriod,
	}
}

// widen parses a decimal-string field into an arbitrary-precision
// integer, preserving values beyond int64/float64 range.
func widen(s string) (*big.Int, bool) {
	value, ok := new(big.Int).SetString(s, 10)
	return value, ok
}
