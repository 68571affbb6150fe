package ticket_board

import (
	"context"
	"fmt"
)

// Gesture одно перетаскивание тикета: Dragging -> Reconciling -> завершен
type Gesture struct {
	board    *Board
	cmd      *statusCommand
	original int64
	settled  bool
}

// TicketID перетаскиваемый тикет
func (g *Gesture) TicketID() int64 {
	return g.cmd.ticketID
}

// OriginalStatus статус тикета до начала жеста
func (g *Gesture) OriginalStatus() int64 {
	return g.original
}

// Over тикет над колонкой: статус меняется только локально
func (g *Gesture) Over(statusID int64) error {
	b := g.board
	b.mu.Lock()
	defer b.mu.Unlock()

	if g.settled || b.state != stateDragging {
		return ErrGestureSettled
	}

	status, ok := b.statusByID(statusID)
	if !ok {
		return fmt.Errorf("%w: id=%d", ErrUnknownStatus, statusID)
	}

	g.cmd.apply(b.tickets, status)
	return nil
}

// Drop завершает жест над колонкой statusID.
// Возврат в исходную колонку восстанавливает снимок без запроса к бэкенду,
// иначе отправляется ровно один PATCH. При ошибке доска откатывается к снимку.
func (g *Gesture) Drop(ctx context.Context, statusID int64) (Outcome, error) {
	b := g.board
	b.mu.Lock()

	if g.settled || b.state != stateDragging {
		b.mu.Unlock()
		return OutcomeNoop, ErrGestureSettled
	}

	status, ok := b.statusByID(statusID)
	if !ok {
		b.mu.Unlock()
		return OutcomeNoop, fmt.Errorf("%w: id=%d", ErrUnknownStatus, statusID)
	}

	if statusID == g.original {
		b.tickets = g.cmd.rollback()
		g.settle()
		b.mu.Unlock()
		b.logger.Info("Board: ticket=%d dropped on its own column, nothing to update", g.cmd.ticketID)
		return OutcomeNoop, nil
	}

	g.cmd.apply(b.tickets, status)
	b.state = stateReconciling
	b.mu.Unlock()

	err := b.client.UpdateTicketStatus(ctx, g.cmd.ticketID, statusID)

	b.mu.Lock()
	if err != nil {
		b.tickets = g.cmd.rollback()
		g.settle()
		b.mu.Unlock()

		b.logger.Warn("Board: failed to move ticket=%d to status=%d, reverted: %v", g.cmd.ticketID, statusID, err)
		b.notifier.Error(msgUpdateFailed)
		return OutcomeReverted, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}
	g.settle()
	b.mu.Unlock()

	b.logger.Info("Board: ticket=%d moved %d -> %d", g.cmd.ticketID, g.original, statusID)
	b.notifier.Success(msgStatusUpdated)
	b.notifyObservers()

	return OutcomeCommitted, nil
}

// Cancel жест завершился вне колонок: доска восстанавливается из снимка
func (g *Gesture) Cancel() (Outcome, error) {
	b := g.board
	b.mu.Lock()
	defer b.mu.Unlock()

	if g.settled || b.state != stateDragging {
		return OutcomeNoop, ErrGestureSettled
	}

	b.tickets = g.cmd.rollback()
	g.settle()
	return OutcomeCancelled, nil
}

// settle вызывается под b.mu
func (g *Gesture) settle() {
	g.settled = true
	g.board.state = stateIdle
}
