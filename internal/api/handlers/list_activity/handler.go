package list_activity

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

const msgInvalidLimit = "limit must be a positive integer"

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/activity?limit=&resource=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if handlers.TokenFromRequest(r) == "" {
		handlers.RespondUnauthorized(w)
		return
	}

	var filter domain.ActivityFilter

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		filter.Limit = limit
	}
	if resource := strings.TrimSpace(r.URL.Query().Get("resource")); resource != "" {
		filter.Resource = &resource
	}

	entries, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /activity - Failed to list activity: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, entries)
}
