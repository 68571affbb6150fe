package session

import (
	"context"
	"time"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

// Store хранилище сессий (Redis или память)
type Store interface {
	Get(ctx context.Context, key string) (*domain.Session, error)
	Set(ctx context.Context, key string, session *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	GetSession(ctx context.Context, token string) (*domain.Session, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
