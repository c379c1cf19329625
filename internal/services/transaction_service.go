package services

import (
	"errors"
	"time"

	"github.com/arblab/arbdash/internal/models"
	"gorm.io/gorm"
)

// DefaultTransactionLimit bounds history queries when the caller does
// not supply a limit.
const DefaultTransactionLimit = 10

// TransactionService handles trade history operations
type TransactionService interface {
	ListTransactions(limit int) ([]models.Transaction, error)
	CreateTransaction(tx *models.Transaction) error
}

type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(db *gorm.DB) TransactionService {
	return &transactionService{db: db}
}

// ListTransactions returns up to limit transactions, newest first.
func (s *transactionService) ListTransactions(limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	var txs []models.Transaction
	err := s.db.Order("date DESC").Limit(limit).Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// CreateTransaction inserts a new transaction. A duplicate tx hash
// yields ErrDuplicate. Records are immutable after creation.
func (s *transactionService) CreateTransaction(tx *models.Transaction) error {
	if tx.Date.IsZero() {
		tx.Date = time.Now()
	}

	err := s.db.Create(tx).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
