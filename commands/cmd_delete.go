package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type DeleteCmd struct {
	flags *Flags
}

func NewDeleteCmd(flags *Flags) *DeleteCmd {
	return &DeleteCmd{flags: flags}
}

func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a message",
		UsageText: "board delete <id>",
		ArgsUsage: "<id>",
		Action:    cmd.run,
	})
	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	message, err := cmd.flags.Service.DeleteMessage(id)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	printStatus(out, "Message deleted")
	renderMessages(out, message)
	return nil
}
