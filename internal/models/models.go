package models

import (
	"time"
)

// User represents a dashboard account. The table exists for future
// authentication work; no route touches it yet.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`
}

// Transaction represents one executed (or attempted) arbitrage trade.
// Amounts are stored as decimal strings so values beyond int64/float64
// range survive the round trip.
type Transaction struct {
	ID      uint              `gorm:"primaryKey" json:"id"`
	TxHash  string            `gorm:"uniqueIndex;not null" json:"txHash"`
	Date    time.Time         `gorm:"not null" json:"date"`
	Type    string            `gorm:"not null" json:"type"`
	Amount  string            `gorm:"not null" json:"amount"`
	GasUsed int               `gorm:"not null" json:"gasUsed"`
	Status  TransactionStatus `gorm:"not null" json:"status"` // Success, Failed, Pending
	UserID  *uint             `json:"userId,omitempty"`
}

// BotStatus is a singleton row holding the bot's current state.
type BotStatus struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Status        BotState  `gorm:"not null;default:0" json:"status"`
	IsFrozen      bool      `gorm:"not null;default:false" json:"isFrozen"`
	LastTradeTime time.Time `json:"lastTradeTime"`
	TotalRevenue  string    `gorm:"not null;default:'0'" json:"totalRevenue"`
	TotalLoss     string    `gorm:"not null;default:'0'" json:"totalLoss"`
	LastProfit    string    `gorm:"not null;default:'0'" json:"lastProfit"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}

// BotConfig is a singleton row holding the bot's trading parameters.
type BotConfig struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	SlippageTolerance int    `gorm:"not null;default:50" json:"slippageTolerance"` // basis points
	USDCAddress       string `gorm:"not null" json:"usdcAddress"`
	WETHAddress       string `gorm:"not null" json:"wethAddress"`
	ContractAddress   string `gorm:"not null" json:"contractAddress"`
	VaultAddress      string `gorm:"not null" json:"vaultAddress"`
	CooldownPeriod    int    `gorm:"not null;default:300" json:"cooldownPeriod"` // seconds
}
