package create_slot_batch

import (
	"encoding/json"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	createSlotBatch "github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
)

// CreateSlotBatchRequest HTTP request model.
// Принимает либо поля формы (dateFrom, dateTo, startTime, endTime),
// либо готовый формат бэкенда (inicio, fin).
type CreateSlotBatchRequest struct {
	DateFrom  string `json:"dateFrom,omitempty"`  // "2025-03-01"
	DateTo    string `json:"dateTo,omitempty"`    // "2025-03-07"
	StartTime string `json:"startTime,omitempty"` // "09:00"
	EndTime   string `json:"endTime,omitempty"`   // "17:00"

	Inicio string `json:"inicio,omitempty"` // "2025-03-01T09:00:00"
	Fin    string `json:"fin,omitempty"`    // "2025-03-07T17:00:00"

	Minutes int `json:"minutes"`
}

// SlotWindowResponse один слот предпросмотра
type SlotWindowResponse struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

// SlotBatchResponse HTTP response model
type SlotBatchResponse struct {
	Inicio        string               `json:"inicio"`
	Fin           string               `json:"fin"`
	Minutes       int                  `json:"minutes"`
	Days          int                  `json:"days"`
	ExpectedSlots int                  `json:"expectedSlots"`
	Slots         []SlotWindowResponse `json:"slots,omitempty"`
	SlotsOmitted  bool                 `json:"slotsOmitted,omitempty"`
	Backend       json.RawMessage      `json:"backend,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotBatchRequest) ToUseCaseRequest() (*createSlotBatch.Request, error) {
	if r.Inicio != "" || r.Fin != "" {
		return createSlotBatch.ParseWire(r.Inicio, r.Fin, r.Minutes)
	}
	return createSlotBatch.ParseForm(r.DateFrom, r.DateTo, r.StartTime, r.EndTime, r.Minutes)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSlotBatch.Response) *SlotBatchResponse {
	out := &SlotBatchResponse{
		Inicio:        resp.Batch.Inicio,
		Fin:           resp.Batch.Fin,
		Minutes:       resp.Batch.Minutes,
		Days:          resp.Days,
		ExpectedSlots: resp.ExpectedSlots,
		Backend:       resp.Backend,
		SlotsOmitted:  resp.WindowsOmitted,
	}
	if len(resp.Windows) > 0 {
		out.Slots = make([]SlotWindowResponse, len(resp.Windows))
		for i, w := range resp.Windows {
			out.Slots[i] = SlotWindowResponse{
				Inicio: w.Start.Format(domain.DateTimeFormat),
				Fin:    w.End.Format(domain.DateTimeFormat),
			}
		}
	}
	return out
}
