package commands

import (
	"context"

	"github.com/urfave/cli/v3"
)

type GetCmd struct {
	flags *Flags
}

func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "get",
		Usage:     "Show a single message",
		UsageText: "board get <id>",
		ArgsUsage: "<id>",
		Action:    cmd.run,
	})
	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	message, err := cmd.flags.Service.GetMessage(id)
	if err != nil {
		return err
	}
	renderMessages(c.Root().Writer, message)
	return nil
}
