package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roomie/internal/delivery/http/validator"
	"roomie/internal/domain/entity"
	"roomie/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubNudgeUsecase records created nudges so tests can assert whether the
// handler reached the usecase at all.
type stubNudgeUsecase struct {
	created []usecase.CreateNudgeInput
}

func (s *stubNudgeUsecase) ListNudges(_ context.Context, _ uuid.UUID, _ int) []*entity.Nudge {
	return nil
}

func (s *stubNudgeUsecase) CreateNudge(_ context.Context, input usecase.CreateNudgeInput) (*entity.Nudge, error) {
	s.created = append(s.created, input)
	return &entity.Nudge{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Title:       input.Title,
		Message:     input.Message,
	}, nil
}

func (s *stubNudgeUsecase) MarkNudgeRead(_ context.Context, _ uuid.UUID) error { return nil }
func (s *stubNudgeUsecase) DismissNudge(_ context.Context, _ uuid.UUID) error  { return nil }
func (s *stubNudgeUsecase) DeleteNudge(_ context.Context, _ uuid.UUID) error   { return nil }

func createNudgeRequest(t *testing.T, body string) (*stubNudgeUsecase, *httptest.ResponseRecorder) {
	t.Helper()

	uc := &stubNudgeUsecase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h := NewNudgeHandler(uc, logger)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/nudges", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateNudge(e.NewContext(req, rec)))
	return uc, rec
}

func TestNudgeHandler_CreateNudge_MissingTitleRejected(t *testing.T) {
	body := fmt.Sprintf(`{"household_id":%q,"message":"Dishes are piling up"}`, uuid.New())

	uc, rec := createNudgeRequest(t, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, uc.created)
}

func TestNudgeHandler_CreateNudge_MissingHouseholdRejected(t *testing.T) {
	uc, rec := createNudgeRequest(t, `{"title":"Dishes","message":"Dishes are piling up"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Empty(t, uc.created)
}

func TestNudgeHandler_CreateNudge_ValidInputReachesUsecase(t *testing.T) {
	householdID := uuid.New()
	body := fmt.Sprintf(`{"household_id":%q,"title":"Dishes","message":"Dishes are piling up"}`, householdID)

	uc, rec := createNudgeRequest(t, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, uc.created, 1)
	assert.Equal(t, householdID, uc.created[0].HouseholdID)
	assert.Equal(t, "Dishes", uc.created[0].Title)
}
