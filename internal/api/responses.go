package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arblab/arbdash/internal/models"
)

// BotStatusResponse is the GET /api/bot/status payload. LastTradeTime is
// unix seconds; monetary fields stay decimal strings so the client can
// widen them losslessly.
type BotStatusResponse struct {
	Status        models.BotState `json:"status"`
	IsFrozen      bool            `json:"isFrozen"`
	LastTradeTime int64           `json:"lastTradeTime"`
	TotalRevenue  string          `json:"totalRevenue"`
	TotalLoss     string          `json:"totalLoss"`
	LastProfit    string          `json:"lastProfit"`
}

// DiagnosticsResponse is a derived, read-only summary of status and
// configuration for display purposes.
type DiagnosticsResponse struct {
	Chain    string `json:"chain"`
	Profit   string `json:"profit"`
	Slippage string `json:"slippage"`
	Oracle   bool   `json:"oracle"`
	Error    string `json:"error"`
}

// BalancesResponse is the fixed two-token balance payload.
type BalancesResponse struct {
	Tokens   []string `json:"tokens"`
	Balances []string `json:"balances"`
}

func statusResponse(status *models.BotStatus) *BotStatusResponse {
	return &BotStatusResponse{
		Status:        status.Status,
		IsFrozen:      status.IsFrozen,
		LastTradeTime: status.LastTradeTime.Unix(),
		TotalRevenue:  status.TotalRevenue,
		TotalLoss:     status.TotalLoss,
		LastProfit:    status.LastProfit,
	}
}

// serverError logs the underlying error with the request id and returns
// a generic 500 body; details stay server-side.
func (s *APIServer) serverError(c *fiber.Ctx, message string, err error) error {
	s.log.Errorw(message, "error", err, "request_id", c.Locals(requestIDKey))
	return c.Status(fiber.StatusInternalServerError).JSON(map[string]string{
		"error": message,
	})
}
