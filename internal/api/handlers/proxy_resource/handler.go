package proxy_resource

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

const msgInvalidRequestBody = "Invalid request body"

// Handler прозрачный прокси /api/{resource}[/{id}] к бэкенду
type Handler struct {
	client   BackendClient
	recorder ActivityRecorder
	sessions SessionLoader
	logger   Logger
}

// NewHandler recorder и sessions могут быть nil
func NewHandler(client BackendClient, recorder ActivityRecorder, sessions SessionLoader, logger Logger) *Handler {
	return &Handler{
		client:   client,
		recorder: recorder,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET|POST /api/{resource}, GET|PATCH|PUT|DELETE /api/{resource}/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resource := vars["resource"]
	id, hasID := vars["id"]

	token := handlers.TokenFromRequest(r)
	if token == "" {
		h.logger.Warn("%s /api/%s - missing auth token", r.Method, resource)
		handlers.RespondUnauthorized(w)
		return
	}

	body, err := handlers.ReadBody(r)
	if err != nil {
		h.logger.Warn("%s /api/%s - failed to read body: %v", r.Method, resource, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	path := "/api/" + resource
	if hasID {
		path += "/" + id
	}

	resp, err := h.client.Do(r.Context(), &backend.Request{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.Query(),
		Body:   body,
		Token:  token,
	})
	if err != nil {
		h.logger.Error("%s %s - backend unavailable: %v", r.Method, path, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RelayTotalCount(w, resp)
	handlers.RespondRaw(w, resp.StatusCode, resp.Body)

	if !resp.OK() {
		h.logger.Warn("%s %s - backend responded %d", r.Method, path, resp.StatusCode)
		return
	}
	if r.Method == http.MethodGet {
		return
	}

	// ответ уже отдан клиенту: поиск email и журнал его не задерживают
	_ = http.NewResponseController(w).Flush()

	var resourceID *string
	if hasID {
		resourceID = &id
	}
	h.record(r, token, resp.StatusCode, resource, resourceID)
}

func (h *Handler) record(r *http.Request, token string, status int, resource string, resourceID *string) {
	if h.recorder == nil {
		return
	}

	entry := domain.ActivityEntry{
		Method:     r.Method,
		Resource:   resource,
		ResourceID: resourceID,
		StatusCode: status,
		Summary:    summarize(r.Method, resource, resourceID),
	}

	if h.sessions != nil {
		if session, err := h.sessions.Load(r.Context(), token); err == nil {
			email := session.User.Email
			entry.Actor = &email
		}
	}

	h.recorder.Record(r.Context(), entry)
}

func summarize(method, resource string, resourceID *string) string {
	target := resource
	if resourceID != nil {
		target = fmt.Sprintf("%s #%s", resource, *resourceID)
	}
	switch method {
	case http.MethodPost:
		return "created " + target
	case http.MethodDelete:
		return "deleted " + target
	default:
		return "updated " + target
	}
}
