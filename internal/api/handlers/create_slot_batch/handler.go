package create_slot_batch

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/DriveTail-Dashboard/internal/api/handlers"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
	createSlotBatch "github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMalformed          = "Invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgDateRange          = "The start date must not be after the end date"
	msgTimeWindow         = "The start time must be before the end time"
	msgInterval           = "The interval must be at least 1 minute and fit into the daily window"
	msgRangeTooLong       = "The date range is too long"
	msgRejected           = "Failed to create slots"
)

type Handler struct {
	useCase  CreateSlotBatchUseCase
	sessions SessionLoader
	logger   Logger
}

// NewHandler sessions может быть nil
func NewHandler(useCase CreateSlotBatchUseCase, sessions SessionLoader, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/slot.batch[?dryRun=true]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := handlers.TokenFromRequest(r)
	if token == "" {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateSlotBatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slot.batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slot.batch - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgMalformed)
		return
	}
	useCaseReq.Token = token

	if dryRun, _ := strconv.ParseBool(r.URL.Query().Get("dryRun")); dryRun {
		result, err := h.useCase.Preview(useCaseReq)
		if err != nil {
			h.respondError(w, err)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
		return
	}

	if h.sessions != nil {
		if s, err := h.sessions.Load(r.Context(), token); err == nil {
			email := s.User.Email
			useCaseReq.Actor = &email
		}
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.logger.Info("POST /slot.batch - Batch created: inicio=%s, fin=%s, minutes=%d",
		result.Batch.Inicio, result.Batch.Fin, result.Batch.Minutes)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, createSlotBatch.ErrMalformedInput):
		handlers.RespondBadRequest(w, msgMalformed)

	case errors.Is(err, createSlotBatch.ErrInvalidDateRange):
		handlers.RespondBadRequest(w, msgDateRange)

	case errors.Is(err, createSlotBatch.ErrInvalidTimeWindow):
		handlers.RespondBadRequest(w, msgTimeWindow)

	case errors.Is(err, createSlotBatch.ErrInvalidInterval):
		handlers.RespondBadRequest(w, msgInterval)

	case errors.Is(err, createSlotBatch.ErrRangeTooLong):
		handlers.RespondBadRequest(w, msgRangeTooLong)

	case errors.Is(err, createSlotBatch.ErrRejected):
		h.logger.Warn("POST /slot.batch - Rejected by backend: %v", err)
		if reqErr, ok := backend.AsRequestError(err); ok {
			message := reqErr.Message
			if message == "" {
				message = msgRejected
			}
			handlers.RespondError(w, reqErr.StatusCode, message)
			return
		}
		handlers.RespondBadRequest(w, msgRejected)

	default:
		h.logger.Error("POST /slot.batch - Failed to create batch: %v", err)
		handlers.RespondInternalError(w)
	}
}
