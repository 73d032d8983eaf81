package main

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/ProHeartly/tidyBot/internal/config"
	"github.com/ProHeartly/tidyBot/internal/logging"
	"github.com/ProHeartly/tidyBot/internal/organize"
	"github.com/ProHeartly/tidyBot/internal/paths"
)

func newRootCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:           "tidybot",
		Short:         "Tidy your downloads folder",
		Long:          `TidyBot sorts the files in your downloads folder into category folders by extension.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be done without moving any files")

	cmd.AddCommand(newConfigCommand())

	return cmd
}

// runOrganize performs one organizing pass. Failures inside the pass are
// logged and reported through the exit-0 path; only a refusal to start (no
// app directory, lock held elsewhere) returns an error.
func runOrganize(cmd *cobra.Command, dryRun bool) error {
	dir, err := paths.AppDataDir()
	if err != nil {
		return fmt.Errorf("resolve app data directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create app data directory: %w", err)
	}

	logger, closer := logging.New(logging.Options{
		FilePath: paths.LogFile(dir),
		Console:  cmd.ErrOrStderr(),
	})
	defer closer.Close()

	lock := flock.New(paths.LockFile(dir))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another tidybot run appears to be active")
	}
	defer func() { _ = lock.Unlock() }()

	store := config.NewStore(dir, logger)
	cfg := store.Load()

	engine := organize.NewEngine(cfg, store, logger, dryRun)
	if _, err := engine.Run(); err != nil {
		// An unusable target aborts the pass but is not a CLI failure
		logger.Error(err.Error())
	}
	return nil
}
