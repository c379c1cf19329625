package services

import (
	"errors"
	"time"

	"github.com/arblab/arbdash/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// singletonID pins the status and config tables to a single row.
// Concurrent first writes collide on the primary key instead of
// inserting twice, which holds on Postgres as well as sqlite.
const singletonID = 1

// StatusService handles the bot status singleton
type StatusService interface {
	GetBotStatus() (*models.BotStatus, error)
	UpdateBotStatus(update BotStatusUpdate) (*models.BotStatus, error)
}

// BotStatusUpdate carries a partial update for the status singleton.
// Nil fields keep their stored (or default) value. LastTradeTime is
// unix seconds, matching the wire format.
type BotStatusUpdate struct {
	Status        *models.BotState `json:"status" validate:"required,min=0,max=5"`
	IsFrozen      *bool            `json:"isFrozen"`
	LastTradeTime *int64           `json:"lastTradeTime"`
	TotalRevenue  *string          `json:"totalRevenue" validate:"omitempty,numeric"`
	TotalLoss     *string          `json:"totalLoss" validate:"omitempty,numeric"`
	LastProfit    *string          `json:"lastProfit" validate:"omitempty,numeric"`
}

type statusService struct {
	db *gorm.DB
}

// NewStatusService creates a new StatusService
func NewStatusService(db *gorm.DB) StatusService {
	return &statusService{db: db}
}

// GetBotStatus returns the singleton status row, or ErrNotFound when no
// status has been written yet.
func (s *statusService) GetBotStatus() (*models.BotStatus, error) {
	var status models.BotStatus
	err := s.db.First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// UpdateBotStatus creates the singleton row on first write and updates
// it in place afterwards, refreshing UpdatedAt. The first write inserts
// with a pinned primary key and ON CONFLICT DO NOTHING, so concurrent
// first-writers cannot both insert; the loser updates the winner's row.
func (s *statusService) UpdateBotStatus(update BotStatusUpdate) (*models.BotStatus, error) {
	var status models.BotStatus
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&status).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			status = models.BotStatus{
				ID:            singletonID,
				LastTradeTime: time.Now(),
				TotalRevenue:  "0",
				TotalLoss:     "0",
				LastProfit:    "0",
				UpdatedAt:     time.Now(),
			}
			applyStatusUpdate(&status, update)
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&status)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				return nil
			}
			// lost the first-write race; update the winner's row instead
			if err := tx.First(&status).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		applyStatusUpdate(&status, update)
		status.UpdatedAt = time.Now()
		return tx.Save(&status).Error
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func applyStatusUpdate(status *models.BotStatus, update BotStatusUpdate) {
	if update.Status != nil {
		status.Status = *update.Status
	}
	if update.IsFrozen != nil {
		status.IsFrozen = *update.IsFrozen
	}
	if update.LastTradeTime != nil {
		status.LastTradeTime = time.Unix(*update.LastTradeTime, 0)
	}
	if update.TotalRevenue != nil {
		status.TotalRevenue = *update.TotalRevenue
	}
	if update.TotalLoss != nil {
		status.TotalLoss = *update.TotalLoss
	}
	if update.LastProfit != nil {
		status.LastProfit = *update.LastProfit
	}
}
