package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eindr-intent-engine/config"
	_ "eindr-intent-engine/docs" // Swagger docs
	"eindr-intent-engine/internal/httpserver"
	"eindr-intent-engine/pkg/log"
)

// @title       Eindr Intent Engine API
// @description Splits one utterance into intent segments, classifies each, and routes them to reminder, note, ledger, and chat handlers with per-segment isolation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Eindr Intent Engine...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		logger.Warnf(ctx, "Database not reachable yet (will retry on first request): %v", err)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		Timezone:        cfg.Engine.Timezone,
		RateLimitPerMin: cfg.Engine.RateLimitPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
