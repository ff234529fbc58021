package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/repository"
)

// fakeSurveyStore records created surveys in memory and reports a duplicate
// for any (user, fair) pair already stored, mirroring the pre-check plus
// unique-constraint behavior of the real repository.
type fakeSurveyStore struct {
	seen      map[[2]uint64]bool
	createErr error
}

func newFakeSurveyStore() *fakeSurveyStore {
	return &fakeSurveyStore{seen: map[[2]uint64]bool{}}
}

func (f *fakeSurveyStore) Exists(_ context.Context, userID, fairID uint64) (bool, error) {
	return f.seen[[2]uint64{userID, fairID}], nil
}

func (f *fakeSurveyStore) Create(_ context.Context, s *model.FairSurvey) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := [2]uint64{s.UserID, s.FairID}
	if f.seen[key] {
		return repository.ErrDuplicate
	}
	f.seen[key] = true
	s.ID = uint64(len(f.seen))
	return nil
}

func (f *fakeSurveyStore) ListByFair(context.Context, uint64) ([]model.FairSurvey, error) {
	return nil, nil
}

func (f *fakeSurveyStore) SatisfactionScores(context.Context, uint64) ([]int, error) {
	return nil, nil
}

func postSurvey(t *testing.T, h *FairSurveyHandler, userID uint64, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/fair-surveys", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	require.NoError(t, h.Create(c))
	return rec
}

const surveyBody = `{"fairId": 3, "satisfaction": 9, "organization": 8, "comments": "buena feria"}`

func TestSurveyCreateOnce(t *testing.T) {
	h := NewFairSurveyHandler(newFakeSurveyStore())

	rec := postSurvey(t, h, 7, surveyBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestSurveySecondSubmissionConflicts(t *testing.T) {
	h := NewFairSurveyHandler(newFakeSurveyStore())

	rec := postSurvey(t, h, 7, surveyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postSurvey(t, h, 7, surveyBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ya envió una encuesta")
}

func TestSurveyDifferentFairOrUserAllowed(t *testing.T) {
	h := NewFairSurveyHandler(newFakeSurveyStore())

	rec := postSurvey(t, h, 7, surveyBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same user, different fair.
	rec = postSurvey(t, h, 7, `{"fairId": 4, "satisfaction": 6, "organization": 5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Different user, same fair.
	rec = postSurvey(t, h, 8, surveyBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// The unique constraint backstops the pre-check when two submissions race:
// Exists says no, but the insert still collides.
func TestSurveyDuplicateInsertRaceConflicts(t *testing.T) {
	store := newFakeSurveyStore()
	store.createErr = repository.ErrDuplicate
	h := NewFairSurveyHandler(store)

	rec := postSurvey(t, h, 7, surveyBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ya envió una encuesta")
}

func TestSurveyValidationRejectsOutOfRange(t *testing.T) {
	h := NewFairSurveyHandler(newFakeSurveyStore())

	rec := postSurvey(t, h, 7, `{"fairId": 3, "satisfaction": 11, "organization": 8}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "satisfaction")
}
