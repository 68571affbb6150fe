package cli

import (
	"context"

	"github.com/m04kA/DriveTail-Dashboard/internal/domain"
	"github.com/m04kA/DriveTail-Dashboard/internal/usecase/create_slot_batch"
)

// SlotsCmd группа команд слотов
type SlotsCmd struct {
	Batch SlotsBatchCmd `cmd:"" help:"Create slots for a date range in one request."`
}

// SlotsBatchCmd создает слоты на каждый день диапазона в окне start-end
type SlotsBatchCmd struct {
	From    string `help:"First day (YYYY-MM-DD)." required:""`
	To      string `help:"Last day, inclusive (YYYY-MM-DD)." required:""`
	Start   string `help:"Daily window start (HH:MM)." required:""`
	End     string `help:"Daily window end (HH:MM)." required:""`
	Minutes int    `help:"Slot length in minutes." default:"30"`
	DryRun  bool   `help:"Print the slots the backend would create without sending the batch."`
}

func (c *SlotsBatchCmd) Run(ctx *Context) error {
	req, err := create_slot_batch.ParseForm(c.From, c.To, c.Start, c.End, c.Minutes)
	if err != nil {
		return err
	}

	uc := create_slot_batch.NewUseCase(ctx.Client, nil, nil, ctx.Logger)

	if c.DryRun {
		resp, err := uc.Preview(req)
		if err != nil {
			return err
		}
		printBatch(ctx, resp)
		if resp.WindowsOmitted {
			ctx.printf("Too many slots to list (limit %d)\n", domain.MaxPreviewSlots)
		}
		for _, w := range resp.Windows {
			ctx.printf("  %s - %s\n", w.Start.Format("2006-01-02 15:04"), w.End.Format(domain.TimeFormat))
		}
		return nil
	}

	if err := ctx.requireToken(); err != nil {
		return err
	}
	req.Token = ctx.Token

	resp, err := uc.Execute(context.Background(), req)
	if err != nil {
		return err
	}
	printBatch(ctx, resp)
	ctx.printf("Batch accepted by backend\n")
	return nil
}

func printBatch(ctx *Context, resp *create_slot_batch.Response) {
	ctx.printf("inicio=%s fin=%s minutes=%d\n", resp.Batch.Inicio, resp.Batch.Fin, resp.Batch.Minutes)
	ctx.printf("%d day(s), %d slot(s) expected\n", resp.Days, resp.ExpectedSlots)
}
