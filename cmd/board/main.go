package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"message-board/commands"

	"github.com/gookit/color"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, color.FgRed.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// run keeps os.Exit out of the command path so deferred cleanup (closing BadgerDB) always runs.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := commands.NewApp(&commands.Flags{}, fmt.Sprintf("%s (%s)", version, commit))
	return app.Run(ctx, os.Args)
}
