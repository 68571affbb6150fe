package activity

import (
	"context"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// Repository интерфейс хранилища журнала
type Repository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// MetricsCollector метрики журнала (может быть nil)
type MetricsCollector interface {
	IncActivityError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
