package get_session

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
)

type SessionService interface {
	Load(ctx context.Context, token string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
