package client

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// BotStatus is the dashboard view of the bot's current state. Monetary
// fields arrive as decimal strings and are widened to big integers for
// downstream math.
type BotStatus struct {
	Status        int
	IsFrozen      bool
	LastTradeTime *big.Int
	TotalRevenue  *big.Int
	TotalLoss     *big.Int
	LastProfit    *big.Int
}

// Diagnostics is the derived status/config summary.
type Diagnostics struct {
	Chain    string
	Profit   *big.Int
	Slippage *big.Int
	Oracle   bool
	Error    string
}

// Balances holds the contract's token balances, index-aligned.
type Balances struct {
	Tokens   []string
	Balances []*big.Int
}

// Transaction is one row of the trade history table.
type Transaction struct {
	ID      uint
	TxHash  string
	Date    time.Time
	Type    string
	Amount  decimal.Decimal
	GasUsed int
	Status  string
}

// BotConfig is the bot's stored trading configuration.
type BotConfig struct {
	ID                uint
	SlippageTolerance int
	USDCAddress       string
	WETHAddress       string
	ContractAddress   string
	VaultAddress      string
	CooldownPeriod    int
}

// wire shapes, before widening

type botStatusWire struct {
	Status        int    `json:"status"`
	IsFrozen      bool   `json:"isFrozen"`
	LastTradeTime int64  `json:"lastTradeTime"`
	TotalRevenue  string `json:"totalRevenue"`
	TotalLoss     string `json:"totalLoss"`
	LastProfit    string `json:"lastProfit"`
}

type diagnosticsWire struct {
	Chain    string `json:"chain"`
	Profit   string `json:"profit"`
	Slippage string `json:"slippage"`
	Oracle   bool   `json:"oracle"`
	Error    string `json:"error"`
}

type balancesWire struct {
	Tokens   []string `json:"tokens"`
	Balances []string `json:"balances"`
}

type transactionWire struct {
	ID      uint      `json:"id"`
	TxHash  string    `json:"txHash"`
	Date    time.Time `json:"date"`
	Type    string    `json:"type"`
	Amount  string    `json:"amount"`
	GasUsed int       `json:"gasUsed"`
	Status  string    `json:"status"`
}

type botConfigWire struct {
	ID                uint   `json:"id"`
	SlippageTolerance int    `json:"slippageTolerance"`
	USDCAddress       string `json:"usdcAddress"`
	WETHAddress       string `json:"wethAddress"`
	ContractAddress   string `json:"contractAddress"`
	VaultAddress      string `json:"vaultAddress"`
	CooldownPeriod    int    `json:"cooldownPeriod"`
}
