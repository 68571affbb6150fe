package sign_in

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

type BackendClient interface {
	SignIn(ctx context.Context, creds backend.SignInRequest) (*backend.AuthResponse, error)
}

type SessionService interface {
	Authorize(user *domain.User) error
	Save(ctx context.Context, token string, session *domain.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
