// Command seed uploads the fixed development dataset, or clears every table
// back down to its sentinel row.
//
// Usage:
//
//	seed upload <household-uuid>
//	seed clear
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"roomie/config"
	"roomie/internal/infra/persistence/postgres"
	"roomie/internal/migrate"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := postgres.Open(cfg)
	if err != nil {
		logger.Error("failed to open postgres", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	seeder := migrate.NewSeeder(postgres.NewTableStore(db), logger)

	switch os.Args[1] {
	case "upload":
		if len(os.Args) < 3 {
			usage()
			os.Exit(1)
		}
		householdID, err := uuid.Parse(os.Args[2])
		if err != nil {
			logger.Error("invalid household id", slog.String("arg", os.Args[2]))
			os.Exit(1)
		}

		result, err := seeder.Upload(ctx, householdID)
		if err != nil {
			logger.Error("seeding failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("sample data uploaded",
			slog.String("household_id", result.HouseholdID.String()),
			slog.Int("members", len(result.MemberIDs)),
		)
	case "clear":
		if err := seeder.Clear(ctx); err != nil {
			logger.Error("clearing failed", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("tables cleared down to sentinel rows")
	case "help":
		usage()
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seed upload <household-uuid> | seed clear")
}
