package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounceDelay coalesces rapid editor write events.
const watchDebounceDelay = 300 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file|directory>...",
	Short: "Re-validate definitions whenever they change",
	Long: `Watch definition files and re-validate them on every write. Useful
while editing a definition: errors show up the moment the file is saved.`,
	Args: cobra.MinimumNArgs(1),
	RunE: watchCommand,
}

func watchCommand(cmd *cobra.Command, args []string) error {
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				fmt.Fprintf(cmd.OutOrStderr(), "failed to watch %s: %v\n", dir, err)
			}
			watchedDirs[dir] = true
		}
	}
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() && !watchedDirs[arg] {
			_ = watcher.Add(arg)
			watchedDirs[arg] = true
		}
	}

	validate := func(path string) {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		if _, err := newLoader().Load(path); err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "%s %s: %v\n", red("Invalid:"), path, err)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Valid:"), path)
		}
	}
	for _, file := range files {
		validate(file)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")

	var debounceTimer *time.Timer
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) && isDefinitionFile(event.Name) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				name := event.Name
				debounceTimer = time.AfterFunc(watchDebounceDelay, func() {
					validate(name)
				})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStderr(), "watch error: %v\n", err)
		}
	}
}
