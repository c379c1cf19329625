package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arblab/arbdash/internal/mockdata"
)

// handleGetBalances returns the fixed two-token demo payload; the store
// is never consulted.
func (s *APIServer) handleGetBalances(c *fiber.Ctx) error {
	return c.JSON(&BalancesResponse{
		Tokens: []string{
			mockdata.USDCAddress.Hex(),
			mockdata.WETHAddress.Hex(),
		},
		Balances: []string{
			mockdata.USDCBalance,
			mockdata.WETHBalance,
		},
	})
}
