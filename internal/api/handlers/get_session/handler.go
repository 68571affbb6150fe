package get_session

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/service/session"
)

const msgAdminRequired = "Access denied. Admin role required."

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.TokenFromRequest(r)
	if token == "" {
		handlers.RespondJSON(w, http.StatusUnauthorized, SessionResponse{})
		return
	}

	s, err := h.sessions.Load(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrForbidden):
			h.logger.Warn("GET /auth/session - Non-admin session")
			handlers.RespondJSON(w, http.StatusForbidden, SessionResponse{Error: msgAdminRequired})

		case errors.Is(err, session.ErrUnauthorized):
			handlers.RespondJSON(w, http.StatusUnauthorized, SessionResponse{})

		default:
			h.logger.Error("GET /auth/session - Failed to load session: %v", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, SessionResponse{})
		}
		return
	}

	resp := SessionResponse{User: &s.User}
	if s.ExpiresAt != nil {
		exp := s.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &exp
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
