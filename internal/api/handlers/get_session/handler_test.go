package get_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	"github.com/m04kA/DriveTail-Dashboard/internal/service/session"
	"github.com/m04kA/DriveTail-Dashboard/pkg/logger"
)

type fakeSessions struct {
	session *domain.Session
	err     error
}

func (s *fakeSessions) Load(context.Context, string) (*domain.Session, error) {
	return s.session, s.err
}

func get(h *Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: domain.CookieAuthToken, Value: token})
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	admin := &domain.Session{User: domain.User{ID: "u1", Email: "admin@drivetail.io", Role: "admin"}}

	cases := []struct {
		name     string
		sessions *fakeSessions
		token    string
		status   int
		body     string
	}{
		{"no cookie", &fakeSessions{}, "", http.StatusUnauthorized, `{"user":null}`},
		{"rejected", &fakeSessions{err: session.ErrUnauthorized}, "tok", http.StatusUnauthorized, `{"user":null}`},
		{"not admin", &fakeSessions{err: session.ErrForbidden}, "tok", http.StatusForbidden, `{"user":null,"error":"Access denied. Admin role required."}`},
		{"backend down", &fakeSessions{err: backend.ErrTransport}, "tok", http.StatusInternalServerError, `{"user":null}`},
		{"admin", &fakeSessions{session: admin}, "tok", http.StatusOK, `{"user":{"id":"u1","email":"admin@drivetail.io","role":"admin"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(NewHandler(tc.sessions, logger.NewNop()), tc.token)
			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
		})
	}
}
