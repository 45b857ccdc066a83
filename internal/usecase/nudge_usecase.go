package usecase

import (
	"context"
	"time"

	"roomie/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateNudgeInput carries the fields needed to create a nudge.
type CreateNudgeInput struct {
	HouseholdID uuid.UUID            `json:"household_id" validate:"required"`
	Title       string               `json:"title" validate:"required"`
	Message     string               `json:"message" validate:"required"`
	Type        entity.NudgeType     `json:"type"`
	Priority    entity.NudgePriority `json:"priority"`
	TargetUsers []uuid.UUID          `json:"target_users"`
	ExpiresAt   *time.Time           `json:"expires_at"`
	ActionURL   string               `json:"action_url"`
}

// NudgeUsecase defines the interface for nudge use cases
type NudgeUsecase interface {
	// ListNudges returns a household's nudges, newest first. Read failures are
	// logged and produce an empty list, never an error.
	ListNudges(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Nudge

	// CreateNudge stores a nudge, then publishes a nudge event and sends a
	// household push. Event and push delivery are best-effort; their failures
	// never fail the mutation.
	CreateNudge(ctx context.Context, input CreateNudgeInput) (*entity.Nudge, error)

	// MarkNudgeRead flags a nudge as read.
	MarkNudgeRead(ctx context.Context, id uuid.UUID) error

	// DismissNudge flags a nudge as dismissed.
	DismissNudge(ctx context.Context, id uuid.UUID) error

	// DeleteNudge removes a nudge.
	DeleteNudge(ctx context.Context, id uuid.UUID) error
}
