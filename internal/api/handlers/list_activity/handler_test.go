package list_activity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
)

type fakeService struct {
	filter  domain.ActivityFilter
	entries []domain.ActivityEntry
	err     error
}

func (s *fakeService) List(_ context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	s.filter = filter
	return s.entries, s.err
}

func get(svc *fakeService, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: domain.CookieAuthToken, Value: "tok"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.MustParse("8d3c3a52-5b0e-4c56-9d0a-1c2b3a4d5e6f")
	svc := &fakeService{entries: []domain.ActivityEntry{{
		ID:         id,
		Method:     "POST",
		Resource:   "slot.batch",
		StatusCode: 201,
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}}}

	rec := get(svc, "/api/activity?limit=5&resource=slot.batch")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"8d3c3a52-5b0e-4c56-9d0a-1c2b3a4d5e6f","method":"POST","resource":"slot.batch","statusCode":201,"createdAt":"2025-03-01T09:00:00Z"}]`, rec.Body.String())
	assert.Equal(t, 5, svc.filter.Limit)
	assert.Equal(t, "slot.batch", *svc.filter.Resource)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/api/activity?limit=-1").Code)
	assert.Equal(t, http.StatusInternalServerError, get(&fakeService{err: errors.New("db down")}, "/api/activity").Code)

	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/activity", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
