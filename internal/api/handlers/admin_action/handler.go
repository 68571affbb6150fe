package admin_action

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUnknownAction      = "Unknown admin action"
)

// Actions действия администратора над пользователями, которые пропускаются на бэкенд
var Actions = map[string]string{
	"create-user": "Failed to create user",
	"remove-user": "Failed to remove user",
	"ban-user":    "Failed to ban user",
	"unban-user":  "Failed to unban user",
	"set-role":    "Failed to set role",
}

type Handler struct {
	client   BackendClient
	recorder ActivityRecorder
	logger   Logger
}

// NewHandler recorder может быть nil
func NewHandler(client BackendClient, recorder ActivityRecorder, logger Logger) *Handler {
	return &Handler{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// Handle POST /api/auth/admin/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	action := mux.Vars(r)["action"]
	fallback, ok := Actions[action]
	if !ok {
		handlers.RespondNotFound(w, msgUnknownAction)
		return
	}

	token := handlers.TokenFromRequest(r)
	if token == "" {
		handlers.RespondUnauthorized(w)
		return
	}

	body, err := handlers.ReadBody(r)
	if err != nil || !json.Valid(body) {
		h.logger.Warn("POST /auth/admin/%s - Invalid request body", action)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.client.Do(r.Context(), &backend.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/admin/" + action,
		Body:   body,
		Token:  token,
	})
	if err != nil {
		h.logger.Error("POST /auth/admin/%s - Backend unavailable: %v", action, err)
		handlers.RespondInternalError(w)
		return
	}

	if !resp.OK() {
		h.logger.Warn("POST /auth/admin/%s - Backend responded %d", action, resp.StatusCode)
		handlers.RespondError(w, resp.StatusCode, resp.Message(fallback))
		return
	}

	h.logger.Info("POST /auth/admin/%s - Done", action)
	handlers.RespondRaw(w, resp.StatusCode, resp.Body)

	if h.recorder != nil {
		h.recorder.Record(r.Context(), domain.ActivityEntry{
			Method:     http.MethodPost,
			Resource:   "user",
			ResourceID: targetUser(body),
			StatusCode: resp.StatusCode,
			Summary:    action,
		})
	}
}

// targetUser userId из тела запроса, если он есть
func targetUser(body []byte) *string {
	var payload struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.UserID == "" {
		return nil
	}
	return &payload.UserID
}
