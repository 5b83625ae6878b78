package commands

import (
	"fmt"
	"io"
	"strings"

	"message-board/domain"
	"message-board/errors"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
)

const timeLayout = "2006-01-02 15:04:05.000"

func payloadFlags(payload *domain.MessagePayload) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "title",
			Aliases:     []string{"t"},
			Usage:       "message title",
			Destination: &payload.Title,
		},
		&cli.StringFlag{
			Name:        "body",
			Aliases:     []string{"b"},
			Usage:       "message body",
			Destination: &payload.Body,
		},
		&cli.StringFlag{
			Name:        "attachment-url",
			Aliases:     []string{"a"},
			Usage:       "attachment reference, stored as is",
			Destination: &payload.AttachmentURL,
		},
	}
}

func requireID(c *cli.Command) (string, error) {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", fmt.Errorf("%w: usage: %s", errors.ErrMissingID, c.UsageText)
	}
	return id, nil
}

func printStatus(w io.Writer, status string) {
	_, _ = fmt.Fprintln(w, color.New(color.FgGreen, color.OpBold).Render(status))
}

// renderMessages writes messages as a borderless table, one row per message.
func renderMessages(w io.Writer, messages ...domain.Message) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Title", "Body", "Attachment", "Created", "Updated"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(messages, func(m domain.Message, _ int) []string {
		updated := "-"
		if m.Updated() {
			updated = m.UpdatedTime().Format(timeLayout)
		}
		return []string{
			m.ID,
			m.Title,
			m.Body,
			lo.Ternary(m.AttachmentURL == "", "-", m.AttachmentURL),
			m.CreatedTime().Format(timeLayout),
			updated,
		}
	}))
	table.Render()
}
