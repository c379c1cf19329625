package services

import (
	"errors"

	"github.com/arblab/arbdash/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigService handles the bot configuration singleton
type ConfigService interface {
	GetBotConfig() (*models.BotConfig, error)
	UpdateBotConfig(update BotConfigUpdate) (*models.BotConfig, error)
}

// BotConfigUpdate carries a partial update for the config singleton.
// Addresses are required on every write; numeric fields fall back to
// their schema defaults when omitted on first write.
type BotConfigUpdate struct {
	SlippageTolerance *int    `json:"slippageTolerance" validate:"omitempty,min=0,max=10000"`
	USDCAddress       *string `json:"usdcAddress" validate:"required,eth_addr"`
	WETHAddress       *string `json:"wethAddress" validate:"required,eth_addr"`
	ContractAddress   *string `json:"contractAddress" validate:"required,eth_addr"`
	VaultAddress      *string `json:"vaultAddress" validate:"required,eth_addr"`
	CooldownPeriod    *int    `json:"cooldownPeriod" validate:"omitempty,min=0"`
}

type configService struct {
	db *gorm.DB
}

// NewConfigService creates a new ConfigService
func NewConfigService(db *gorm.DB) ConfigService {
	return &configService{db: db}
}

// GetBotConfig returns the singleton config row, or ErrNotFound when no
// configuration has been written yet.
func (s *configService) GetBotConfig() (*models.BotConfig, error) {
	var config models.BotConfig
	err := s.db.First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// UpdateBotConfig creates the singleton row on first write and updates
// it in place afterwards. The first write inserts with a pinned primary
// key and ON CONFLICT DO NOTHING, so concurrent first-writers cannot
// both insert; the loser updates the winner's row.
func (s *configService) UpdateBotConfig(update BotConfigUpdate) (*models.BotConfig, error) {
	var config models.BotConfig
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.First(&config).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			config = models.BotConfig{
				ID:                singletonID,
				SlippageTolerance: 50,
				CooldownPeriod:    300,
			}
			applyConfigUpdate(&config, update)
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&config)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				return nil
			}
			// lost the first-write race; update the winner's row instead
			if err := tx.First(&config).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		}

		applyConfigUpdate(&config, update)
		return tx.Save(&config).Error
	})
	if err != nil {
		return nil, err
	}
	return &config, nil
}

func applyConfigUpdate(config *models.BotConfig, update BotConfigUpdate) {
	if update.SlippageTolerance != nil {
		config.SlippageTolerance = *update.SlippageTolerance
	}
	if update.USDCAddress != nil {
		config.USDCAddress = *update.USDCAddress
	}
	if update.WETHAddress != nil {
		config.WETHAddress = *update.WETHAddress
	}
	if update.ContractAddress != nil {
		config.ContractAddress = *update.ContractAddress
	}
	if update.VaultAddress != nil {
		config.VaultAddress = *update.VaultAddress
	}
	if update.CooldownPeriod != nil {
		config.CooldownPeriod = *update.CooldownPeriod
	}
}
