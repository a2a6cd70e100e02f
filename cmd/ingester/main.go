package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/path2prevention/server/internal/config"
	"codeberg.org/path2prevention/server/internal/logger"
)

func main() {
	flags := config.ParseIngestFlags()

	// load environment variables
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// connect to database
	ctx := context.Background()
	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to create database pool", "error", err)
	}

	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", "error", err)
	}

	logger.Info("connected to database")

	if err := IngestPrograms(ctx, db, flags); err != nil {
		logger.Fatal("failed to ingest programs", "error", err)
	}
}
