package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file if present
	"go.uber.org/zap"

	"github.com/arblab/arbdash/internal/api"
	"github.com/arblab/arbdash/internal/config"
	"github.com/arblab/arbdash/internal/services"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	var showVersion = flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("Arbitrage Dashboard API\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", CommitHash)
		fmt.Printf("Built: %s\n", BuildTime)
		return
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	logger := zapLogger.Sugar()

	cfg, err := config.NewApp()
	if err != nil {
		logger.Fatalw("failed to read configuration", "error", err)
	}

	var dbService services.DBService
	if cfg.DatabaseURL != "" {
		dbService, err = services.NewPostgresDBService(cfg.DatabaseURL)
	} else {
		dbService, err = services.NewSqliteDBService(cfg.DBPath)
	}
	if err != nil {
		logger.Fatalw("failed to initialize database", "error", err)
	}
	defer dbService.Close()

	db := dbService.GetDB()
	statusService := services.NewStatusService(db)
	configService := services.NewConfigService(db)
	txService := services.NewTransactionService(db)

	apiServer := api.NewAPIServer(logger, statusService, configService, txService)
	port, err := apiServer.Start(cfg.Port)
	if err != nil {
		logger.Fatalw("failed to start API server", "error", err)
	}
	logger.Infow("API server started", "port", port)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("shutting down server")
	if err := apiServer.Shutdown(); err != nil {
		logger.Errorw("error shutting down API server", "error", err)
	}
	logger.Info("server shut down successfully")
}
