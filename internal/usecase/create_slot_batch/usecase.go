package create_slot_batch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

const (
	resultCreated  = "created"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
	resultFailed   = "failed"
)

// UseCase use case пакетного создания слотов
type UseCase struct {
	client   BackendClient
	recorder ActivityRecorder
	metrics  MetricsCollector
	logger   Logger
}

// NewUseCase создает новый экземпляр use case.
// recorder и metrics могут быть nil.
func NewUseCase(client BackendClient, recorder ActivityRecorder, metrics MetricsCollector, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		recorder: recorder,
		metrics:  metrics,
		logger:   logger,
	}
}

// Preview валидирует запрос и перечисляет слоты без обращения к бэкенду
func (uc *UseCase) Preview(req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	batch := req.toDomain()
	resp := &Response{
		Batch:         batch.ToSlotBatch(),
		Days:          batch.Days(),
		ExpectedSlots: batch.Days() * batch.SlotsPerDay(),
	}

	if resp.ExpectedSlots > domain.MaxPreviewSlots {
		resp.WindowsOmitted = true
		return resp, nil
	}
	resp.Windows = batch.Expand()

	return resp, nil
}

// Execute отправляет ровно один запрос POST /api/slot.batch.
// Повторов нет: либо бэкенд принял пакет целиком, либо ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateSlotBatch: validation failed: %v", err)
		uc.incMetric(resultInvalid)
		return nil, err
	}

	batch := req.toDomain()
	wire := batch.ToSlotBatch()

	uc.logger.Info("CreateSlotBatch: inicio=%s, fin=%s, minutes=%d", wire.Inicio, wire.Fin, wire.Minutes)

	body, err := uc.client.CreateSlotBatch(ctx, req.Token, wire)
	if err != nil {
		if reqErr, ok := backend.AsRequestError(err); ok {
			uc.logger.Warn("CreateSlotBatch: backend rejected batch: %d %s", reqErr.StatusCode, reqErr.Message)
			uc.incMetric(resultRejected)
			return nil, fmt.Errorf("%w: %w", ErrRejected, reqErr)
		}
		uc.logger.Error("CreateSlotBatch: failed to create batch: %v", err)
		uc.incMetric(resultFailed)
		return nil, fmt.Errorf("%w: failed to create batch: %w", ErrInternal, err)
	}

	uc.incMetric(resultCreated)

	resp := &Response{
		Batch:         wire,
		Days:          batch.Days(),
		ExpectedSlots: batch.Days() * batch.SlotsPerDay(),
		Backend:       body,
	}

	uc.record(ctx, req, resp)

	uc.logger.Info("CreateSlotBatch: batch accepted, days=%d, expected slots=%d", resp.Days, resp.ExpectedSlots)

	return resp, nil
}

func (uc *UseCase) record(ctx context.Context, req *Request, resp *Response) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(ctx, domain.ActivityEntry{
		ID:         uuid.New(),
		Method:     http.MethodPost,
		Resource:   "slot.batch",
		StatusCode: http.StatusCreated,
		Actor:      req.Actor,
		Summary: fmt.Sprintf("%s - %s every %d min (%d slots)",
			resp.Batch.Inicio, resp.Batch.Fin, resp.Batch.Minutes, resp.ExpectedSlots),
		CreatedAt: time.Now(),
	})
}

func (uc *UseCase) incMetric(result string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IncSlotBatch(result)
}
