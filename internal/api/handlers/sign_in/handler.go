package sign_in

import (
	"net/http"
	"strings"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgCredentials        = "Email and password are required"
	msgAuthFailed         = "Authentication failed"
	msgAccessDenied       = "Access denied. Only administrators can access this application."
)

type Handler struct {
	client   BackendClient
	sessions SessionService
	cookies  handlers.CookieOptions
	logger   Logger
}

func NewHandler(client BackendClient, sessions SessionService, cookies handlers.CookieOptions, logger Logger) *Handler {
	return &Handler{
		client:   client,
		sessions: sessions,
		cookies:  cookies,
		logger:   logger,
	}
}

// Handle POST /api/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !req.valid() {
		handlers.RespondBadRequest(w, msgCredentials)
		return
	}

	auth, err := h.client.SignIn(r.Context(), backend.SignInRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if handlers.RespondBackendError(w, err, msgAuthFailed) {
			h.logger.Warn("POST /auth/sign-in - Rejected: email=%s, error=%v", req.Email, err)
			return
		}
		h.logger.Error("POST /auth/sign-in - Failed to sign in: email=%s, error=%v", req.Email, err)
		return
	}

	if auth.User != nil {
		if err := h.sessions.Authorize(auth.User); err != nil {
			h.logger.Warn("POST /auth/sign-in - Non-admin sign in attempt: email=%s, role=%q", auth.User.Email, auth.User.Role)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
	}

	if auth.Token != "" {
		role := ""
		if auth.User != nil {
			role = auth.User.Role
			session := &domain.Session{User: *auth.User}
			if err := h.sessions.Save(r.Context(), auth.Token, session); err != nil {
				h.logger.Warn("POST /auth/sign-in - Failed to cache session: %v", err)
			}
		}
		handlers.SetSessionCookies(w, h.cookies, auth.Token, role)
	}

	h.logger.Info("POST /auth/sign-in - Signed in: email=%s", req.Email)
	handlers.RespondRaw(w, http.StatusOK, auth.Raw)
}
