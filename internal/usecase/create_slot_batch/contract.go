package create_slot_batch

import (
	"context"
	"encoding/json"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	CreateSlotBatch(ctx context.Context, token string, batch domain.SlotBatch) (json.RawMessage, error)
}

// ActivityRecorder журнал действий (может быть nil)
type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
}

// MetricsCollector метрики результатов (может быть nil)
type MetricsCollector interface {
	IncSlotBatch(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
