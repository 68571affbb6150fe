package cli

// CLI корневая структура команд boardctl
type CLI struct {
	Globals

	Board BoardCmd `cmd:"" help:"Print the ticket board grouped by status."`
	Move  MoveCmd  `cmd:"" help:"Drag a ticket to another status column."`
	Slots SlotsCmd `cmd:"" help:"Manage backend time slots."`
}
