package sign_out

import (
	"net/http"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
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

// Handle POST /api/auth/sign-out
// Выход на бэкенде best effort: cookie очищаются в любом случае.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.TokenFromRequest(r)

	if token != "" {
		if err := h.client.SignOut(r.Context(), token); err != nil {
			h.logger.Warn("POST /auth/sign-out - Backend sign-out failed: %v", err)
		}
		if err := h.sessions.Clear(r.Context(), token); err != nil {
			h.logger.Warn("POST /auth/sign-out - Failed to clear cached session: %v", err)
		}
	}

	handlers.ClearSessionCookies(w, h.cookies)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
