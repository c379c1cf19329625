package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arblab/arbdash/internal/services"
)

// handleGetBotConfig returns the stored configuration. Unlike status
// there is no mock fallback: a fresh store yields 404.
func (s *APIServer) handleGetBotConfig(c *fiber.Ctx) error {
	config, err := s.configSvc.GetBotConfig()
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(map[string]string{
			"error": "Bot configuration not found",
		})
	}
	if err != nil {
		return s.serverError(c, "Failed to fetch bot configuration", err)
	}
	return c.JSON(config)
}

// handleUpdateBotConfig validates and upserts the config singleton,
// returning the stored entity.
func (s *APIServer) handleUpdateBotConfig(c *fiber.Ctx) error {
	var update services.BotConfigUpdate
	if err := c.BodyParser(&update); err != nil {
		return validationError(c, "Invalid configuration data", err)
	}
	if err := s.validate.Struct(update); err != nil {
		return validationError(c, "Invalid configuration data", err)
	}

	config, err := s.configSvc.UpdateBotConfig(update)
	if err != nil {
		return s.serverError(c, "Failed to update bot configuration", err)
	}
	return c.JSON(config)
}
