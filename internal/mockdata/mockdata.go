// Package mockdata holds the hardcoded values substituted when the
// backing store is empty, so the dashboard renders meaningfully in a
// fresh demo environment.
package mockdata

import (
	"math/rand"
	"time"

	"github.com/arblab/arbdash/internal/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Sepolia token addresses used by the demo deployment.
var (
	USDCAddress = common.HexToAddress("0x1c7D4B196Cb0C7B01d743Fbc6116a902379C7238")
	WETHAddress = common.HexToAddress("0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14")
)

// Fallback figures shown before any real data exists. Integer amounts in
// token base units, as decimal strings.
const (
	TotalRevenue = "5000000000" // 5000 USDC
	TotalLoss    = "1200000000" // 1200 USDC
	LastProfit   = "320000000"  // 320 USDC

	ChainName           = "Sepolia"
	DiagnosticsSlippage = "50"

	// USDC balance and WETH balance for the balances endpoint.
	USDCBalance = "12500000000"         // 12,500 USDC
	WETHBalance = "1500000000000000000" // 1.5 WETH
)

// MockTransactionCount is how many demo transactions an empty store yields.
const MockTransactionCount = 10

// Fixed seed so the generated history is stable between requests.
const txSeed = 0x6ae43d

// Transactions generates a demo trade history anchored at now: hourly
// spaced, roughly 80% successful, with signed two-decimal amounts and
// plausible gas figures. Nothing is persisted.
func Transactions(now time.Time) []models.Transaction {
	rng := rand.New(rand.NewSource(txSeed))
	txs := make([]models.Transaction, 0, MockTransactionCount)

	for i := 0; i < MockTransactionCount; i++ {
		success := rng.Float64() > 0.2

		var amount decimal.Decimal
		if success {
			amount = decimal.NewFromFloat(rng.Float64()*2000 + 100)
		} else {
			amount = decimal.NewFromFloat(-rng.Float64()*500 - 10)
		}

		status := models.TransactionStatusSuccess
		if !success {
			status = models.TransactionStatusFailed
		}

		var hash common.Hash
		rng.Read(hash[:])

		txs = append(txs, models.Transaction{
			ID:      uint(i + 1),
			TxHash:  hash.Hex(),
			Date:    now.Add(-time.Duration(i) * time.Hour),
			Type:    "Arbitrage",
			Amount:  amount.Round(2).String(),
			GasUsed: rng.Intn(100000) + 200000,
			Status:  status,
		})
	}

	return txs
}
