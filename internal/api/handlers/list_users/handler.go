package list_users

import (
	"net/http"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
)

const msgFetchFailed = "Failed to fetch users"

type Handler struct {
	client BackendClient
	logger Logger
}

func NewHandler(client BackendClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/auth/admin/list-users
// Ответ всегда {"users": [...], "total": N}, в какой бы форме его ни вернул бэкенд.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.TokenFromRequest(r)
	if token == "" {
		handlers.RespondUnauthorized(w)
		return
	}

	page, err := h.client.ListUsers(r.Context(), token, r.URL.Query())
	if err != nil {
		if handlers.RespondBackendError(w, err, msgFetchFailed) {
			h.logger.Warn("GET /auth/admin/list-users - Rejected: %v", err)
			return
		}
		h.logger.Error("GET /auth/admin/list-users - Failed to fetch users: %v", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
