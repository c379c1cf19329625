package api

import (
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arblab/arbdash/internal/services"
)

// APIServer exposes the dashboard REST surface. Handlers are stateless;
// all durable state lives behind the services.
type APIServer struct {
	app       *fiber.App
	log       *zap.SugaredLogger
	validate  *validator.Validate
	statusSvc services.StatusService
	configSvc services.ConfigService
	txSvc     services.TransactionService
	port      int
}

// NewAPIServer wires the handlers to their services.
func NewAPIServer(
	log *zap.SugaredLogger,
	statusSvc services.StatusService,
	configSvc services.ConfigService,
	txSvc services.TransactionService,
) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(requestIDKey, uuid.New().String())
		return c.Next()
	})

	server := &APIServer{
		app:       app,
		log:       log,
		validate:  newValidator(),
		statusSvc: statusSvc,
		configSvc: configSvc,
		txSvc:     txSvc,
	}
	server.setupRoutes()
	return server
}

const requestIDKey = "request_id"

func (s *APIServer) setupRoutes() {
	// Health check
	health := func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	}
	s.app.Get("/health", health)
	s.app.Get("/api/health", health)

	api := s.app.Group("/api")

	// Bot status
	api.Get("/bot/status", s.handleGetBotStatus)
	api.Post("/bot/status", s.handleUpdateBotStatus)

	// Diagnostics
	api.Get("/bot/diagnostics", s.handleGetDiagnostics)

	// Bot configuration
	api.Get("/bot/config", s.handleGetBotConfig)
	api.Post("/bot/config", s.handleUpdateBotConfig)

	// Transaction history
	api.Get("/transactions", s.handleListTransactions)
	api.Post("/transactions", s.handleCreateTransaction)

	// Wallet balances (mock data)
	api.Get("/bot/balances", s.handleGetBalances)
}

// App returns the underlying fiber app, used by tests.
func (s *APIServer) App() *fiber.App {
	return s.app
}

// Start starts the server on the given port; port 0 picks a free one.
func (s *APIServer) Start(port int) (int, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	go func() {
		if err := s.app.Listener(listener); err != nil {
			s.log.Errorw("api server stopped", "error", err)
		}
	}()

	return s.port, nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}
