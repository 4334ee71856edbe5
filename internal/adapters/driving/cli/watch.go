package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/semwerk/semspec/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-validate documents on change",
	Long: `Watches a directory and re-runs validation for each changed page or
graph document. Stops on interrupt.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&validateMode, "mode", "", "Validation mode: strict or loose (default strict)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the root and every subdirectory.
	err = filepath.WalkDir(args[0], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	cmd.Printf("watching %s\n", args[0])
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			switch filepath.Ext(event.Name) {
			case ".md", ".markdown", ".yaml", ".yml":
			default:
				continue
			}

			logger.Debug("change detected: %s", event.Name)
			if _, err := validateFile(cmd, event.Name); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", styleError.Render("error"), event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-interrupt:
			cmd.Println("stopping")
			return nil
		}
	}
}
