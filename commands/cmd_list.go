package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

type ListCmd struct {
	flags *Flags
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags) *ListCmd {
	return &ListCmd{flags: flags}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "list",
		Aliases:     []string{"ls"},
		Usage:       "List all messages",
		UsageText:   "board list",
		Description: "Displays every message on the board, ordered by id.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	messages, err := cmd.flags.Service.ListMessages()
	if err != nil {
		return fmt.Errorf("list messages: %w", err)
	}

	out := c.Root().Writer
	if len(messages) == 0 {
		printStatus(out, "No messages found")
		return nil
	}
	renderMessages(out, messages...)
	return nil
}
