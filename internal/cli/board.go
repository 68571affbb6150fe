package cli

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/usecase/ticket_board"
)

// BoardCmd печатает канбан-доску тикетов по колонкам статусов
type BoardCmd struct {
	Empty bool `help:"Show columns without tickets."`
}

func (c *BoardCmd) Run(ctx *Context) error {
	if err := ctx.requireToken(); err != nil {
		return err
	}

	board := ticket_board.NewBoard(ctx.Client.WithToken(ctx.Token), writerNotifier{out: ctx.Out}, ctx.Logger)
	if err := board.Load(context.Background()); err != nil {
		return err
	}

	printColumns(ctx, board.Columns(), c.Empty)
	return nil
}

func printColumns(ctx *Context, columns []ticket_board.Column, showEmpty bool) {
	if len(columns) == 0 {
		ctx.printf("No ticket statuses found\n")
		return
	}

	for _, col := range columns {
		if len(col.Tickets) == 0 && !showEmpty {
			continue
		}
		ctx.printf("%s (#%d) - %d\n", col.Status.Nombre, col.Status.ID, len(col.Tickets))
		for _, t := range col.Tickets {
			line := "  #" + itoa(t.ID) + " " + t.Nombre
			if t.User != nil && t.User.Name != "" {
				line += " [" + t.User.Name + "]"
			}
			if t.Urgencia != nil {
				line += " (" + t.Urgencia.Nombre + ")"
			}
			ctx.printf("%s\n", line)
		}
	}
}
