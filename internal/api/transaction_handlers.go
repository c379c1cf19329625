package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arblab/arbdash/internal/mockdata"
	"github.com/arblab/arbdash/internal/models"
	"github.com/arblab/arbdash/internal/services"
)

// CreateTransactionRequest is the POST /api/transactions body. Date
// defaults to now when omitted; records are immutable once created.
type CreateTransactionRequest struct {
	TxHash  string     `json:"txHash" validate:"required"`
	Date    *time.Time `json:"date"`
	Type    string     `json:"type" validate:"required"`
	Amount  string     `json:"amount" validate:"required,numeric"`
	GasUsed *int       `json:"gasUsed" validate:"required,min=0"`
	Status  string     `json:"status" validate:"required,oneof=Success Failed Pending"`
	UserID  *uint      `json:"userId"`
}

// handleListTransactions returns the most recent transactions, newest
// first. An empty store yields the deterministic demo history instead,
// without persisting it.
func (s *APIServer) handleListTransactions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", services.DefaultTransactionLimit)

	txs, err := s.txSvc.ListTransactions(limit)
	if err != nil {
		return s.serverError(c, "Failed to fetch transactions", err)
	}

	if len(txs) == 0 {
		txs = mockdata.Transactions(time.Now())
	}
	return c.JSON(txs)
}

// handleCreateTransaction validates and records a new transaction.
// Duplicate hashes are rejected with 409.
func (s *APIServer) handleCreateTransaction(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return validationError(c, "Invalid transaction data", err)
	}
	if err := s.validate.Struct(req); err != nil {
		return validationError(c, "Invalid transaction data", err)
	}

	tx := &models.Transaction{
		TxHash:  req.TxHash,
		Type:    req.Type,
		Amount:  req.Amount,
		GasUsed: *req.GasUsed,
		Status:  models.TransactionStatus(req.Status),
		UserID:  req.UserID,
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}

	err := s.txSvc.CreateTransaction(tx)
	if errors.Is(err, services.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(map[string]string{
			"error": "Transaction already exists",
		})
	}
	if err != nil {
		return s.serverError(c, "Failed to create transaction", err)
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}
