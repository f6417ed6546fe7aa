// Package main implements the entry point for the Nugomed API server,
// the back office behind the medical tourism site: surgery catalogue,
// package pricing, partner directory, customer and purchase records, and
// transactional email.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/nugomed/nugomed-api/internal/config"
	"github.com/nugomed/nugomed-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// run wires configuration, logging, the database, and the HTTP server, and
// blocks until shutdown completes.
func run() error {
	// A .env file is a local-development convenience; deployed environments
	// inject real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer app.cleanup()

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
