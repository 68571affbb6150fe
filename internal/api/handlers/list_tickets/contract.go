package list_tickets

import (
	"context"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

type BackendClient interface {
	ListTickets(ctx context.Context, token string, query url.Values) (*backend.TicketsPage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
