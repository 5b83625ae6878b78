package commands

import (
	"context"

	"message-board/domain"

	"github.com/urfave/cli/v3"
)

type UpdateCmd struct {
	flags   *Flags
	payload domain.MessagePayload
}

func NewUpdateCmd(flags *Flags) *UpdateCmd {
	return &UpdateCmd{flags: flags}
}

func (cmd *UpdateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "update",
		Aliases:   []string{"edit"},
		Usage:     "Replace the title, body and attachment of a message",
		UsageText: "board update <id> --title <title> [--body <body>] [--attachment-url <url>]",
		Description: `Every payload field is replaced, so omitted flags clear the field.
The id and creation time are kept.`,
		ArgsUsage: "<id>",
		Flags:     payloadFlags(&cmd.payload),
		Action:    cmd.run,
	})
	return app
}

func (cmd *UpdateCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireID(c)
	if err != nil {
		return err
	}
	message, err := cmd.flags.Service.UpdateMessage(id, cmd.payload)
	if err != nil {
		return err
	}
	out := c.Root().Writer
	printStatus(out, "Message updated")
	renderMessages(out, message)
	return nil
}
