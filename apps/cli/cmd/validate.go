package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate watch definitions without executing them",
	Long: `Validate watch definition files for structural errors without
executing anything.

Examples:
  watchhook validate alerts.json
  watchhook validate ./watches/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json, .yaml or .yml files found")
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	loader := newLoader()
	hasErrors := false
	for _, file := range files {
		if _, err := loader.Load(file); err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "%s %s: %v\n", red("Invalid:"), file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Valid:"), file)
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && isDefinitionFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		} else {
			files = append(files, arg)
		}
	}
	return files, nil
}
