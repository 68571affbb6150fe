package admin_action

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

type BackendClient interface {
	Do(ctx context.Context, req *backend.Request) (*backend.Response, error)
}

type ActivityRecorder interface {
	Record(ctx context.Context, entry domain.ActivityEntry)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
