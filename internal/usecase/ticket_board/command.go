package ticket_board

import "github.com/m04kA/DriveTail-Dashboard/internal/domain"

// statusCommand отложенная смена статуса: оптимистичное применение, затем commit или rollback.
// snapshot не меняется до завершения жеста.
type statusCommand struct {
	ticketID int64
	target   domain.TicketStatus
	snapshot []domain.Ticket
}

func newStatusCommand(ticketID int64, tickets []domain.Ticket) *statusCommand {
	return &statusCommand{
		ticketID: ticketID,
		snapshot: domain.CloneTickets(tickets),
	}
}

// apply меняет статус тикета в рабочем списке
func (c *statusCommand) apply(tickets []domain.Ticket, target domain.TicketStatus) {
	c.target = target
	for i := range tickets {
		if tickets[i].ID == c.ticketID {
			tickets[i].SetStatus(target)
			return
		}
	}
}

// rollback возвращает копию снимка
func (c *statusCommand) rollback() []domain.Ticket {
	return domain.CloneTickets(c.snapshot)
}

// originalStatus статус тикета на момент начала жеста
func (c *statusCommand) originalStatus() int64 {
	for i := range c.snapshot {
		if c.snapshot[i].ID == c.ticketID {
			return c.snapshot[i].StatusID()
		}
	}
	return 0
}
