package create_slot_batch

import (
	"encoding/json"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/pkg/types"
)

// Request модель запроса на создание пакета слотов
type Request struct {
	RangeStart      time.Time        // Первый день (включительно)
	RangeEnd        time.Time        // Последний день (включительно)
	StartTime       types.TimeString // Начало дневного окна
	EndTime         types.TimeString // Конец дневного окна
	IntervalMinutes int              // Длительность слота

	Token string  // Bearer токен администратора
	Actor *string // Email администратора для журнала
}

// Response результат создания (или предпросмотра) пакета
type Response struct {
	Batch         domain.SlotBatch
	Days          int
	ExpectedSlots int
	Windows       []domain.SlotWindow // заполняется только в Preview
	Backend       json.RawMessage     // тело ответа бэкенда без изменений

	// WindowsOmitted слотов больше domain.MaxPreviewSlots, Windows пуст
	WindowsOmitted bool
}

func (r *Request) toDomain() domain.SlotBatchRequest {
	return domain.SlotBatchRequest{
		RangeStart:      r.RangeStart,
		RangeEnd:        r.RangeEnd,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IntervalMinutes: r.IntervalMinutes,
	}
}
