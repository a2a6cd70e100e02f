package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/path2prevention/server/internal/config"
	"codeberg.org/path2prevention/server/internal/logger"
	"codeberg.org/path2prevention/server/path2prevention/programs"
)

// loads program seed data from a JSON file into the database
func IngestPrograms(ctx context.Context, db *pgxpool.Pool, flags config.Flags) error {
	logger.Info("starting program ingestion", "path", flags.Path, "clear", flags.Clear)

	repo := programs.NewRepository(db)

	if flags.CreateSchema {
		logger.Info("creating database schema")

		if err := repo.CreateSchema(ctx); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if flags.Clear {
		logger.Info("clearing existing programs")

		if err := repo.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear existing programs: %w", err)
		}
	}

	data, err := os.ReadFile(flags.Path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []programs.ProgramSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(seeds) == 0 {
		return fmt.Errorf("no programs found in seed file")
	}

	logger.Info("parsed seed file", "programs", len(seeds))

	if err := repo.InsertSeedBatch(ctx, seeds); err != nil {
		return fmt.Errorf("failed to insert programs: %w", err)
	}

	// verify insertion
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify program count: %w", err)
	}

	logger.Info("successfully ingested programs",
		"programs_inserted", len(seeds),
		"total_programs", count,
	)

	return nil
}
