package client_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arblab/arbdash/client"
	"github.com/ethereum/go-ethereum/params"
)

func statusBody(status int, profit string) string {
	raw, _ := json.Marshal(map[string]any{
		"status":        status,
		"isFrozen":      false,
		"lastTradeTime": 1700000000,
		"totalRevenue":  "0",
		"totalLoss":     "0",
		"lastProfit":    profit,
	})
	return string(raw)
}

func newSchedulerServer(t *testing.T, status *atomic.Value) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bot/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(status.Load().(string)))
	})
	mux.HandleFunc("/api/bot/diagnostics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chain":"Sepolia","profit":"1","slippage":"50","oracle":true,"error":"OK"}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSchedulerInitialFetch(t *testing.T) {
	var status atomic.Value
	status.Store(statusBody(1, "100"))
	server := newSchedulerServer(t, &status)

	s := client.NewScheduler(client.New(server.URL, zap.NewNop().Sugar()), zap.NewNop().Sugar())
	s.Start()
	defer s.Close()

	require.Eventually(t, func() bool {
		return s.BotStatus() != nil
	}, 2*time.Second, 10*time.Millisecond)

	snapshot := s.BotStatus()
	assert.Equal(t, 1, snapshot.Status)
	assert.Equal(t, big.NewInt(100), snapshot.LastProfit)

	require.Eventually(t, func() bool {
		return s.Diagnostics() != nil && s.HeaderStatus() != nil
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerInvalidateRefetches(t *testing.T) {
	var status atomic.Value
	status.Store(statusBody(1, "100"))
	server := newSchedulerServer(t, &status)

	s := client.NewScheduler(client.New(server.URL, zap.NewNop().Sugar()), zap.NewNop().Sugar())
	s.Start()
	defer s.Close()

	require.Eventually(t, func() bool {
		return s.BotStatus() != nil
	}, 2*time.Second, 10*time.Millisecond)

	status.Store(statusBody(2, "999"))
	s.Invalidate(client.QueryBotStatus)

	require.Eventually(t, func() bool {
		snapshot := s.BotStatus()
		return snapshot != nil && snapshot.Status == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSchedulerFailureYieldsNilSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	s := client.NewScheduler(client.New(server.URL, zap.NewNop().Sugar()), zap.NewNop().Sugar())
	s.Start()
	defer s.Close()

	require.Eventually(t, func() bool {
		_, fetched := s.Result(client.QueryBotStatus)
		return fetched
	}, 2*time.Second, 10*time.Millisecond)

	assert.Nil(t, s.BotStatus())
}

func TestSchedulerGasPriceSimulated(t *testing.T) {
	// no server at all: the gas price never touches the network
	s := client.NewScheduler(client.New("http://127.0.0.1:0", zap.NewNop().Sugar()), zap.NewNop().Sugar())
	s.Start()
	defer s.Close()

	require.Eventually(t, func() bool {
		return s.GasPrice() != nil
	}, 2*time.Second, 10*time.Millisecond)

	price := s.GasPrice()
	min := big.NewInt(25 * params.GWei)
	max := big.NewInt(35 * params.GWei)
	assert.True(t, price.Cmp(min) >= 0, "gas price below 25 gwei: %s", price)
	assert.True(t, price.Cmp(max) <= 0, "gas price above 35 gwei: %s", price)
}

func TestSchedulerInvalidateAll(t *testing.T) {
	var status atomic.Value
	status.Store(statusBody(3, "5"))
	server := newSchedulerServer(t, &status)

	s := client.NewScheduler(client.New(server.URL, zap.NewNop().Sugar()), zap.NewNop().Sugar())
	s.Start()
	defer s.Close()

	require.Eventually(t, func() bool {
		return s.BotStatus() != nil && s.HeaderStatus() != nil
	}, 2*time.Second, 10*time.Millisecond)

	status.Store(statusBody(4, "6"))
	s.InvalidateAll()

	require.Eventually(t, func() bool {
		dash, header := s.BotStatus(), s.HeaderStatus()
		return dash != nil && dash.Status == 4 && header != nil && header.Status == 4
	}, 2*time.Second, 10*time.Millisecond)
}
