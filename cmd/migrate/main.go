// Command migrate copies every household collection out of the legacy
// Firestore project into PostgreSQL. It is safe to re-run: rows are upserted
// by a deterministic ID derived from the source document ID.
package main

import (
	"context"
	"log/slog"
	"os"

	"roomie/config"
	"roomie/internal/infra/firestore"
	"roomie/internal/infra/persistence/postgres"
	"roomie/internal/migrate"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine in deployed environments.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Firestore == nil {
		logger.Error("firestore config is required for migration")
		os.Exit(1)
	}

	ctx := context.Background()

	source, err := firestore.NewSource(ctx, cfg.Firestore)
	if err != nil {
		logger.Error("failed to open firestore source", slog.Any("error", err))
		os.Exit(1)
	}
	defer source.Close()

	db, err := postgres.Open(cfg)
	if err != nil {
		logger.Error("failed to open postgres", slog.Any("error", err))
		os.Exit(1)
	}

	summary := migrate.NewMigrator(source, postgres.NewTableStore(db), logger).Run(ctx)

	logger.Info("migration finished",
		slog.Int("migrated", summary.Migrated()),
		slog.Int("failed_collections", summary.Failed()),
	)

	if !summary.OK() {
		os.Exit(1)
	}
}
