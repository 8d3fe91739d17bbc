// Command cleanup physically removes viewpoints that no topic references
// anymore, and snapshot binaries left behind by them. Topic deletion does
// not cascade to viewpoints, so this is intended to be invoked by an
// external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/asanmartin/bimviewer-backend/internal/adapter/postgres"
	snapshotrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/snapshot"
	viewpointrepo "github.com/asanmartin/bimviewer-backend/internal/adapter/postgres/viewpoint"
	"github.com/asanmartin/bimviewer-backend/internal/app"
	"github.com/asanmartin/bimviewer-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	viewpoints := viewpointrepo.New(pool)
	snapshots := snapshotrepo.New(pool)

	// Viewpoints first: removing them releases their snapshot references.
	orphanedVPs, err := viewpoints.DeleteOrphans(ctx)
	if err != nil {
		logger.Error("delete orphaned viewpoints", slog.String("error", err.Error()))
		os.Exit(1)
	}

	orphanedSnaps, err := snapshots.DeleteOrphans(ctx)
	if err != nil {
		logger.Error("delete orphaned snapshots", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("viewpoints", orphanedVPs),
		slog.Int64("snapshots", orphanedSnaps),
	)
}
