package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/arblab/arbdash/internal/fallback"
	"github.com/arblab/arbdash/internal/mockdata"
	"github.com/arblab/arbdash/internal/services"
)

// handleGetBotStatus returns the stored status, or the hardcoded demo
// payload when nothing has been written yet. Store failures do not fall
// back; they surface as 500.
func (s *APIServer) handleGetBotStatus(c *fiber.Ctx) error {
	chain := fallback.NewChain(
		func() (*BotStatusResponse, error) {
			status, err := s.statusSvc.GetBotStatus()
			if errors.Is(err, services.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return statusResponse(status), nil
		},
		fallback.Static(mockBotStatus),
	)

	resp, err := chain.Resolve()
	if err != nil {
		return s.serverError(c, "Failed to fetch bot status", err)
	}
	return c.JSON(resp)
}

// handleUpdateBotStatus validates and upserts the status singleton,
// returning the stored entity.
func (s *APIServer) handleUpdateBotStatus(c *fiber.Ctx) error {
	var update services.BotStatusUpdate
	if err := c.BodyParser(&update); err != nil {
		return validationError(c, "Invalid status data", err)
	}
	if err := s.validate.Struct(update); err != nil {
		return validationError(c, "Invalid status data", err)
	}

	status, err := s.statusSvc.UpdateBotStatus(update)
	if err != nil {
		return s.serverError(c, "Failed to update bot status", err)
	}
	return c.JSON(status)
}

// handleGetDiagnostics joins the two singletons into a display summary;
// if either is missing the whole payload is mocked.
func (s *APIServer) handleGetDiagnostics(c *fiber.Ctx) error {
	chain := fallback.NewChain(
		func() (*DiagnosticsResponse, error) {
			status, err := s.statusSvc.GetBotStatus()
			if errors.Is(err, services.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}

			config, err := s.configSvc.GetBotConfig()
			if errors.Is(err, services.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}

			botError := "OK"
			if status.IsFrozen {
				botError = "Frozen"
			}
			return &DiagnosticsResponse{
				Chain:    mockdata.ChainName,
				Profit:   status.LastProfit,
				Slippage: strconv.Itoa(config.SlippageTolerance),
				Oracle:   true,
				Error:    botError,
			}, nil
		},
		fallback.Static(mockDiagnostics),
	)

	resp, err := chain.Resolve()
	if err != nil {
		return s.serverError(c, "Failed to fetch diagnostics", err)
	}
	return c.JSON(resp)
}

func mockBotStatus() *BotStatusResponse {
	return &BotStatusResponse{
		Status:        0, // Idle
		IsFrozen:      false,
		LastTradeTime: time.Now().Add(-time.Hour).Unix(),
		TotalRevenue:  mockdata.TotalRevenue,
		TotalLoss:     mockdata.TotalLoss,
		LastProfit:    mockdata.LastProfit,
	}
}

func mockDiagnostics() *DiagnosticsResponse {
	return &DiagnosticsResponse{
		Chain:    mockdata.ChainName,
		Profit:   mockdata.LastProfit,
		Slippage: mockdata.DiagnosticsSlippage,
		Oracle:   true,
		Error:    "OK",
	}
}
