package commands

import (
	"context"

	"message-board/domain"

	"github.com/urfave/cli/v3"
)

type CreateCmd struct {
	flags   *Flags
	payload domain.MessagePayload
}

func NewCreateCmd(flags *Flags) *CreateCmd {
	return &CreateCmd{flags: flags}
}

func (cmd *CreateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "create",
		Aliases:     []string{"new"},
		Usage:       "Post a new message",
		UsageText:   "board create --title <title> [--body <body>] [--attachment-url <url>]",
		Description: "Creates a message with a generated id and prints it.",
		Flags:       payloadFlags(&cmd.payload),
		Action:      cmd.run,
	})
	return app
}

func (cmd *CreateCmd) run(ctx context.Context, c *cli.Command) error {
	message, err := cmd.flags.Service.CreateMessage(cmd.payload)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	printStatus(out, "Message created")
	renderMessages(out, message)
	return nil
}
