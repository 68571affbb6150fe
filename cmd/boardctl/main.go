package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/m04kA/DriveTail-Dashboard/internal/cli"
)

func main() {
	var root cli.CLI
	ctx := kong.Parse(&root,
		kong.Name("boardctl"),
		kong.Description("DriveTail admin tooling: ticket board and slot batches"),
		kong.UsageOnError(),
	)

	appCtx, err := cli.NewContext(root.Globals, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer appCtx.Logger.Close()

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
