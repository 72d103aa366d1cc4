package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/watchhook/watchhook/packages/input"
	"github.com/watchhook/watchhook/packages/xcontent"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a definition's canonical form with secrets redacted",
	Long: `Parse a watch definition and print its canonical document plus the
request it describes. Auth credentials are always redacted, so the output
is safe to paste into logs and tickets.`,
	Args: cobra.ExactArgs(1),
	RunE: showCommand,
}

func showCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	w, err := newLoader().Load(args[0])
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("watch:"), w.ID)
	if w.Name != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("name:"), w.Name)
	}
	if w.Interval > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("interval:"), w.Interval)
	}
	if h, ok := w.Input.(*input.HTTP); ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("input request:"), cyan(h.Request().String()))
	}
	if w.Webhook != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", bold("webhook:"), cyan(w.Webhook.String()))
	}

	writer := xcontent.NewWriter()
	if err := w.WriteRedactedTo(writer); err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, writer.Bytes(), "", "  "); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", pretty.String())
	return nil
}
