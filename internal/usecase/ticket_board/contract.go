package ticket_board

import (
	"context"
	"net/url"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/integrations/backend"
)

// BackendClient клиент бэкенда, привязанный к токену администратора
type BackendClient interface {
	ListTicketStatuses(ctx context.Context) ([]domain.TicketStatus, error)
	ListTickets(ctx context.Context, query url.Values) (*backend.TicketsPage, error)
	UpdateTicketStatus(ctx context.Context, ticketID, statusID int64) error
}

// Notifier показывает уведомления пользователю
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
