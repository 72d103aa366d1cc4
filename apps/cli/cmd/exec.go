package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <file>",
	Short: "Run a definition's input once and print the payload",
	Long: `Parse a watch definition, execute its input a single time, and print
the resulting payload as JSON. The webhook, if any, is not fired.`,
	Args: cobra.ExactArgs(1),
	RunE: execCommand,
}

func execCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	w, err := newLoader().Load(args[0])
	if err != nil {
		return err
	}

	result, err := w.Input.Execute(cmd.Context())
	if err != nil {
		return err
	}

	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s input, execution %s)\n",
		bold("watch:"), w.ID, result.Type, result.ExecutionID)

	payload, err := json.MarshalIndent(result.Payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", payload)
	return nil
}
