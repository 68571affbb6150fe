package list_tickets

import (
	"net/http"
	"strconv"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

const (
	msgInvalidFilter = "Invalid ticket filter"
	msgFetchFailed   = "Failed to fetch tickets"
)

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

// Handle GET /api/ticket
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.TokenFromRequest(r)
	if token == "" {
		handlers.RespondUnauthorized(w)
		return
	}

	filter, query, err := ParseFilter(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /ticket - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	page, err := h.client.ListTickets(r.Context(), token, query)
	if err != nil {
		if handlers.RespondBackendError(w, err, msgFetchFailed) {
			h.logger.Warn("GET /ticket - Rejected: %v", err)
			return
		}
		h.logger.Error("GET /ticket - Failed to fetch tickets: %v", err)
		return
	}

	tickets := filter.Apply(page.Tickets)

	w.Header().Set(domain.HeaderTotalCount, strconv.Itoa(page.Total))
	w.Header().Set(domain.HeaderFilteredCount, strconv.Itoa(len(tickets)))
	w.Header().Set("Access-Control-Expose-Headers", domain.HeaderTotalCount+", "+domain.HeaderFilteredCount)
	handlers.RespondJSON(w, http.StatusOK, tickets)
}
