package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

func TestSetSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	opts := CookieOptions{Secure: true, SameSite: http.SameSiteLaxMode, MaxAge: 24 * time.Hour}

	SetSessionCookies(rec, opts, "tok-1", domain.RoleAdmin)

	cookies := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		cookies[c.Name] = c
	}
	require.Len(t, cookies, 2)

	for name, value := range map[string]string{domain.CookieAuthToken: "tok-1", domain.CookieUserRole: domain.RoleAdmin} {
		c := cookies[name]
		require.NotNil(t, c, name)
		assert.Equal(t, value, c.Value)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, 86400, c.MaxAge)
	}
}

func TestSetSessionCookies_EmptyRoleSkipped(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookies(rec, CookieOptions{MaxAge: time.Hour}, "tok-1", "")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, domain.CookieAuthToken, cookies[0].Name)
	assert.Equal(t, "tok-1", cookies[0].Value)
}

func TestClearSessionCookies(t *testing.T) {
	rec := httptest.NewRecorder()

	ClearSessionCookies(rec, CookieOptions{})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestTokenAndRoleFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, TokenFromRequest(req))
	assert.Empty(t, RoleFromRequest(req))

	req.AddCookie(&http.Cookie{Name: domain.CookieAuthToken, Value: "tok"})
	req.AddCookie(&http.Cookie{Name: domain.CookieUserRole, Value: "admin"})
	assert.Equal(t, "tok", TokenFromRequest(req))
	assert.Equal(t, "admin", RoleFromRequest(req))
}

func TestRespondBackendError(t *testing.T) {
	t.Run("relays backend status and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := fmt.Errorf("wrap: %w", &backend.RequestError{StatusCode: http.StatusConflict, Message: "Slot overlaps"})

		relayed := RespondBackendError(rec, err, "Failed")

		assert.True(t, relayed)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"message":"Slot overlaps"}`, rec.Body.String())
	})

	t.Run("fallback message", func(t *testing.T) {
		rec := httptest.NewRecorder()

		RespondBackendError(rec, &backend.RequestError{StatusCode: http.StatusBadRequest}, "Failed to fetch users")

		assert.JSONEq(t, `{"message":"Failed to fetch users"}`, rec.Body.String())
	})

	t.Run("other errors are internal", func(t *testing.T) {
		rec := httptest.NewRecorder()

		relayed := RespondBackendError(rec, errors.New("dial tcp: refused"), "Failed")

		assert.False(t, relayed)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
	})
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remote     string
		trustProxy bool
		want       string
	}{
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.7"}, "10.0.0.1:5000", true, "203.0.113.7"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "198.51.100.2, 10.0.0.2"}, "10.0.0.1:5000", true, "198.51.100.2"},
		{"remote addr", nil, "192.0.2.1:443", true, "192.0.2.1"},
		{"real ip ignored", map[string]string{"X-Real-IP": "203.0.113.7"}, "10.0.0.1:5000", false, "10.0.0.1"},
		{"forwarded for ignored", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "10.0.0.1:5000", false, "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req, tt.trustProxy))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"admin@drivetail.io"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "admin@drivetail.io", dst.Email)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	assert.Error(t, DecodeJSON(req, &dst))
}
