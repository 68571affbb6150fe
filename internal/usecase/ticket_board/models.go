package ticket_board

import "github.com/m04kA/DriveTail-Dashboard/internal/domain"

// Outcome итог жеста
type Outcome int

const (
	// OutcomeNoop тикет вернули в исходную колонку, запроса не было
	OutcomeNoop Outcome = iota
	// OutcomeCommitted бэкенд подтвердил новый статус
	OutcomeCommitted
	// OutcomeReverted бэкенд отказал, доска восстановлена из снимка
	OutcomeReverted
	// OutcomeCancelled жест завершился вне колонок
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNoop:
		return "noop"
	case OutcomeCommitted:
		return "committed"
	case OutcomeReverted:
		return "reverted"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Column колонка доски
type Column struct {
	Status  domain.TicketStatus
	Tickets []domain.Ticket
}

const (
	msgStatusUpdated = "Estado del ticket actualizado"
	msgUpdateFailed  = "No se pudo actualizar el estado del ticket"
)
