package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	portEnvKey        = "PORT"
	databaseURLEnvKey = "DATABASE_URL"
	dbPathEnvKey      = "DB_PATH"

	defaultPort   = 8080
	defaultDBPath = "./arbdash.db"
)

// App holds the process configuration, read from the environment. When
// DatabaseURL is set the store is PostgreSQL; otherwise SQLite at DBPath.
type App struct {
	Port        int
	DatabaseURL string
	DBPath      string
}

// NewApp reads the app configuration from the environment.
func NewApp() (App, error) {
	app := App{
		Port:        defaultPort,
		DatabaseURL: os.Getenv(databaseURLEnvKey),
		DBPath:      defaultDBPath,
	}

	if raw := os.Getenv(portEnvKey); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return App{}, fmt.Errorf("invalid %s: %w", portEnvKey, err)
		}
		app.Port = port
	}

	if path := os.Getenv(dbPathEnvKey); path != "" {
		app.DBPath = path
	}

	return app, nil
}
