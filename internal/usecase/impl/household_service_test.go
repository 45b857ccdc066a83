package impl

import (
	"context"
	"testing"

	"roomie/internal/domain/entity"
	domainerrors "roomie/internal/domain/errors"
	"roomie/internal/domain/repository"
	mockRepo "roomie/internal/mocks/repository"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestHouseholdService(t *testing.T) (usecase.HouseholdUsecase, *mockRepo.MockHouseholdRepository) {
	repo := mockRepo.NewMockHouseholdRepository(t)

	return NewHouseholdService(repo), repo
}

func TestHouseholdService_CreateHousehold_RequiresMembers(t *testing.T) {
	svc, _ := createTestHouseholdService(t)

	_, err := svc.CreateHousehold(context.Background(), usecase.CreateHouseholdInput{
		Name: "Empty Nest",
	})

	assert.ErrorIs(t, err, domainerrors.ErrHouseholdMembersEmpty)
}

func TestHouseholdService_CreateHousehold_Success(t *testing.T) {
	svc, repo := createTestHouseholdService(t)

	repo.On("CreateHousehold", mock.Anything, mock.Anything).Return(nil)

	members := []uuid.UUID{uuid.New(), uuid.New()}
	household, err := svc.CreateHousehold(context.Background(), usecase.CreateHouseholdInput{
		Name:      "Maple St. Crew",
		Address:   "12 Maple St",
		MemberIDs: members,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, household.ID)
	assert.Equal(t, members, household.MemberIDs)
}

func TestHouseholdService_GetHousehold_NotFound(t *testing.T) {
	svc, repo := createTestHouseholdService(t)

	id := uuid.New()
	repo.On("FindHouseholdByID", mock.Anything, id).Return(nil, repository.ErrHouseholdNotFound)

	_, err := svc.GetHousehold(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrHouseholdNotFound)
}

func TestHouseholdService_UpdateHousehold_ReplacesFields(t *testing.T) {
	svc, repo := createTestHouseholdService(t)

	id := uuid.New()
	existing := &entity.Household{ID: id, Name: "Old Name", MemberIDs: []uuid.UUID{uuid.New()}}
	repo.On("FindHouseholdByID", mock.Anything, id).Return(existing, nil)
	repo.On("UpdateHousehold", mock.Anything, mock.MatchedBy(func(h *entity.Household) bool {
		return h.ID == id && h.Name == "New Name"
	})).Return(nil)

	updated, err := svc.UpdateHousehold(context.Background(), id, usecase.CreateHouseholdInput{
		Name:      "New Name",
		MemberIDs: []uuid.UUID{uuid.New()},
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}
