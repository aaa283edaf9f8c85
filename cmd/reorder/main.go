// Command reorder renumbers the display_order of every topic and of the
// tips of every topic to a dense 0..n-1 sequence, keeping relative order.
// It repairs scopes left inconsistent by an interrupted write and is safe
// to run against a live database.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/grouponesailor/group6-tips-server/internal/app"
	"github.com/grouponesailor/group6-tips-server/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	backend, err := app.OpenBackend(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	if _, err := app.Reorder(ctx, backend, logger); err != nil {
		logger.Error("reorder failed", slog.String("error", err.Error()))
		backend.Close()
		os.Exit(1)
	}
}
