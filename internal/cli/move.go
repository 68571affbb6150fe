package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/DriveTail-Dashboard/internal/usecase/ticket_board"
)

// ErrMoveReverted бэкенд отказал в смене статуса
var ErrMoveReverted = errors.New("ticket status change was reverted")

// MoveCmd перетаскивает тикет в колонку статуса.
// --via задает колонки, над которыми тикет проходит до отпускания.
type MoveCmd struct {
	Ticket int64   `arg:"" help:"Ticket ID."`
	Status int64   `arg:"" help:"Target status ID."`
	Via    []int64 `help:"Status IDs hovered before the drop, in order."`
}

func (c *MoveCmd) Run(ctx *Context) error {
	if err := ctx.requireToken(); err != nil {
		return err
	}

	bg := context.Background()
	board := ticket_board.NewBoard(ctx.Client.WithToken(ctx.Token), writerNotifier{out: ctx.Out}, ctx.Logger)
	if err := board.Load(bg); err != nil {
		return err
	}

	gesture, err := board.StartDrag(c.Ticket)
	if err != nil {
		return fmt.Errorf("cannot drag ticket #%d: %w", c.Ticket, err)
	}

	for _, statusID := range c.Via {
		if err := gesture.Over(statusID); err != nil {
			_, _ = gesture.Cancel()
			return fmt.Errorf("cannot hover status #%d: %w", statusID, err)
		}
	}

	outcome, err := gesture.Drop(bg, c.Status)
	if err != nil {
		if outcome == ticket_board.OutcomeReverted {
			return fmt.Errorf("%w: %w", ErrMoveReverted, err)
		}
		_, _ = gesture.Cancel()
		return fmt.Errorf("cannot drop ticket #%d on status #%d: %w", c.Ticket, c.Status, err)
	}

	if outcome == ticket_board.OutcomeNoop {
		ctx.printf("Ticket #%d already in status #%d\n", c.Ticket, c.Status)
		return nil
	}
	ctx.printf("Ticket #%d moved to status #%d\n", c.Ticket, c.Status)
	return nil
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
