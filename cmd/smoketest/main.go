// Command smoketest exercises the data path end to end against a running
// environment: database connectivity, a household round-trip, and, when a
// local Pub/Sub endpoint is configured, one test event.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"roomie/config"
	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	"roomie/internal/domain/service"
	"roomie/internal/infra/persistence/postgres"
	"roomie/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("smoke test passed")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}
	logger.Info("database reachable")

	// Round-trip one household through the repository layer.
	repo := postgres.NewHouseholdRepository(db)
	household := &entity.Household{
		ID:        uuid.New(),
		Name:      "smoketest",
		MemberIDs: []uuid.UUID{uuid.New()},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.CreateHousehold(ctx, household); err != nil {
		return err
	}
	found, err := repo.FindHouseholdByID(ctx, household.ID)
	if err != nil {
		return err
	}
	logger.Info("household round-trip ok", slog.String("id", found.ID.String()))
	if err := repo.DeleteHousehold(ctx, household.ID); err != nil {
		return err
	}

	// One test event through the local publisher, when configured.
	if cfg.PubSub != nil && cfg.PubSub.Provider == constants.PubSubProviderLocal && cfg.PubSub.LocalEndpoint != "" {
		publisher := pubsub.NewLocalHTTPPublisher(cfg.PubSub.LocalEndpoint, logger)
		defer publisher.Close()

		event := &service.NudgeEvent{
			NudgeID:     uuid.New().String(),
			HouseholdID: uuid.New().String(),
			Type:        string(entity.NudgeTypeHarmonyTip),
			Priority:    string(entity.NudgePriorityLow),
			Title:       "smoketest",
			Message:     "smoke test event",
		}
		if err := publisher.PublishNudgeEvent(ctx, event); err != nil {
			return err
		}
		logger.Info("test event published")
	}

	return nil
}
