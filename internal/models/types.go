package models

// BotState mirrors the arbitrage contract's status enum.
type BotState int

const (
	BotStateIdle      BotState = 0
	BotStateRunning   BotState = 1
	BotStatePaused    BotState = 2
	BotStateScanning  BotState = 3
	BotStateExecuting BotState = 4
	BotStateFrozen    BotState = 5
)

// Valid reports whether the state maps to a known enum value.
func (s BotState) Valid() bool {
	return s >= BotStateIdle && s <= BotStateFrozen
}

func (s BotState) String() string {
	switch s {
	case BotStateIdle:
		return "Idle"
	case BotStateRunning:
		return "Running"
	case BotStatePaused:
		return "Paused"
	case BotStateScanning:
		return "Scanning"
	case BotStateExecuting:
		return "Executing"
	case BotStateFrozen:
		return "Frozen"
	}
	return "Unknown"
}

type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "Success"
	TransactionStatusFailed  TransactionStatus = "Failed"
	TransactionStatusPending TransactionStatus = "Pending"
)
