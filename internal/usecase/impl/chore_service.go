package impl

import (
	"context"
	"log/slog"
	"time"

	"roomie/internal/domain/constants"
	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	"roomie/internal/errors"
	"roomie/internal/observability/metrics"
	"roomie/internal/usecase"

	"github.com/google/uuid"
)

type choreService struct {
	choreRepo repository.ChoreRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewChoreService creates a new chore service instance
func NewChoreService(
	choreRepo repository.ChoreRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ChoreUsecase {
	return &choreService{
		choreRepo: choreRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// ListChores returns a household's chores, newest first. A failed read is
// logged and served as an empty list.
func (s *choreService) ListChores(ctx context.Context, householdID uuid.UUID, limit int) []*entity.Chore {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	chores, err := s.choreRepo.ListChoresByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list chores, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("chores")

		return []*entity.Chore{}
	}

	return chores
}

// ListChoreCompletions returns a household's completion records, newest first,
// with the same read-failure policy as ListChores.
func (s *choreService) ListChoreCompletions(ctx context.Context, householdID uuid.UUID, limit int) []*entity.ChoreCompletion {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}

	completions, err := s.choreRepo.ListChoreCompletionsByHousehold(ctx, householdID, limit)
	if err != nil {
		s.logger.Error("failed to list chore completions, serving empty",
			slog.String("household_id", householdID.String()),
			slog.Any("error", err),
		)
		metrics.ObserveSwallowedRead("chore_completions")

		return []*entity.ChoreCompletion{}
	}

	return completions
}

// CreateChore puts a new chore on the board.
func (s *choreService) CreateChore(ctx context.Context, input usecase.CreateChoreInput) (*entity.Chore, error) {
	if input.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.ChorePriorityMedium
	}
	category := input.Category
	if category == "" {
		category = entity.ChoreCategoryGeneral
	}

	now := time.Now()
	chore := &entity.Chore{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Title:       input.Title,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		AssignedBy:  input.AssignedBy,
		DueDate:     input.DueDate,
		Status:      entity.ChoreStatusPending,
		Priority:    priority,
		Category:    category,
		Points:      input.Points,
		Recurrence:  input.Recurrence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.choreRepo.CreateChore(ctx, chore); err != nil {
		return nil, err
	}

	return chore, nil
}

// CompleteChore marks a chore completed and records a completion with the
// chore's point value for the completing user. Both writes happen in one
// transaction, alongside a notification to the rest of the household.
func (s *choreService) CompleteChore(ctx context.Context, choreID, userID uuid.UUID) (*entity.ChoreCompletion, error) {
	var completion *entity.ChoreCompletion

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		choreRepo := repoFactory.NewChoreRepository()

		chore, err := choreRepo.FindChoreByID(ctx, choreID)
		if err != nil {
			if errors.Is(err, repository.ErrChoreNotFound) {
				return domainerrors.ErrEntityNotFound
			}

			return err
		}

		if chore.Status == entity.ChoreStatusCompleted {
			return domainerrors.ErrChoreAlreadyCompleted
		}

		now := time.Now()
		if err := choreRepo.UpdateChoreStatus(ctx, choreID, entity.ChoreStatusCompleted, &now); err != nil {
			return err
		}

		completion = &entity.ChoreCompletion{
			ID:           uuid.New(),
			ChoreID:      chore.ID,
			HouseholdID:  chore.HouseholdID,
			UserID:       userID,
			PointsEarned: chore.Points,
			CompletedAt:  now,
		}
		if err := choreRepo.CreateChoreCompletion(ctx, completion); err != nil {
			return err
		}

		return s.notifyHousehold(ctx, repoFactory, chore, userID, now)
	})
	if err != nil {
		return nil, err
	}

	return completion, nil
}

// notifyHousehold writes a completion notification for every other roommate.
func (s *choreService) notifyHousehold(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	chore *entity.Chore,
	completedBy uuid.UUID,
	completedAt time.Time,
) error {
	household, err := repoFactory.NewHouseholdRepository().FindHouseholdByID(ctx, chore.HouseholdID)
	if err != nil {
		// A missing household must not undo the completion itself.
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil
		}

		return err
	}

	notifications := make([]*entity.Notification, 0, len(household.MemberIDs))
	for _, memberID := range household.MemberIDs {
		if memberID == completedBy {
			continue
		}
		notifications = append(notifications, &entity.Notification{
			ID:          uuid.New(),
			UserID:      memberID,
			HouseholdID: chore.HouseholdID,
			Type:        entity.NotificationTypeSystem,
			Title:       "Chore completed",
			Message:     chore.Title + " is done",
			Metadata:    map[string]string{"chore_id": chore.ID.String()},
			CreatedAt:   completedAt,
		})
	}

	return repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, notifications)
}

// AssignChore sets or clears the assignee of a chore.
func (s *choreService) AssignChore(ctx context.Context, choreID uuid.UUID, assignedTo *uuid.UUID, assignedBy uuid.UUID) error {
	if err := s.choreRepo.AssignChore(ctx, choreID, assignedTo, assignedBy); err != nil {
		if errors.Is(err, repository.ErrChoreNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}

// DeleteChore removes a chore.
func (s *choreService) DeleteChore(ctx context.Context, id uuid.UUID) error {
	if err := s.choreRepo.DeleteChore(ctx, id); err != nil {
		if errors.Is(err, repository.ErrChoreNotFound) {
			return domainerrors.ErrEntityNotFound
		}

		return err
	}

	return nil
}
