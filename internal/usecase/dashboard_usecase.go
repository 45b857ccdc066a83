package usecase

import (
	"context"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase defines the interface for the harmony dashboard use case
type DashboardUsecase interface {
	// GetDashboardStats assembles the harmony snapshot for a household. It never
	// returns an error: any data-layer failure yields the safe-default snapshot
	// with IsFallback set.
	GetDashboardStats(ctx context.Context, householdID uuid.UUID) *entity.DashboardStats
}
