package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	whttp "github.com/watchhook/watchhook/packages/http"
	"github.com/watchhook/watchhook/packages/http/auth"
	"github.com/watchhook/watchhook/packages/input"
	"github.com/watchhook/watchhook/packages/watch"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var noColorFlag bool

var rootCmd = &cobra.Command{
	Use:   "watchhook",
	Short: "Declarative HTTP calls for alerting and automation.",
	Long: `watchhook parses watch definitions that describe HTTP calls
(webhooks and data-fetch inputs) declaratively, validates them at
definition time, and executes them on demand. A malformed definition is
rejected before it can ever reach execution.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env file is fine; values already exported win.
		_ = godotenv.Load()
	},
}

// Execute runs the CLI.
func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLoader wires the default parsing stack: auth registry, request
// parser, client, input registry.
func newLoader() *watch.Loader {
	requests := whttp.NewRequestParser(auth.DefaultRegistry())
	inputs := input.DefaultRegistry(requests, whttp.NewClient())
	return watch.NewLoader(inputs, requests)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}
