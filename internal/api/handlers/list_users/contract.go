package list_users

import (
	"context"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

type BackendClient interface {
	ListUsers(ctx context.Context, token string, query url.Values) (*backend.UsersPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
