package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ProHeartly/tidyBot/internal/config"
	"github.com/ProHeartly/tidyBot/internal/logging"
	"github.com/ProHeartly/tidyBot/internal/paths"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigPathCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigResetCommand())

	return configCmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.AppDataDir()
			if err != nil {
				return fmt.Errorf("resolve app data directory: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), paths.ConfigFile(dir))
			return nil
		},
	}
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.AppDataDir()
			if err != nil {
				return fmt.Errorf("resolve app data directory: %w", err)
			}

			// Loading self-heals a corrupt file; route those warnings to stderr
			logger, closer := logging.New(logging.Options{Console: cmd.ErrOrStderr()})
			defer closer.Close()

			store := config.NewStore(dir, logger)
			cfg := store.Load()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n", store.Path())
			fmt.Fprintf(out, "Downloads folder: %s\n", cfg.DownloadsPath)
			fmt.Fprintf(out, "Initialized: %t\n", cfg.Initialized)

			rows := make([][]string, 0, len(cfg.Categories))
			for _, name := range cfg.CategoryNames() {
				extensions := strings.Join(cfg.Categories[name], " ")
				if extensions == "" {
					extensions = "(everything else)"
				}
				rows = append(rows, []string{name, extensions})
			}
			fmt.Fprintln(out, renderTable([]string{"Category", "Extensions"}, rows, 64))
			return nil
		},
	}
}

func newConfigResetCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Write a pristine default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := paths.AppDataDir()
			if err != nil {
				return fmt.Errorf("resolve app data directory: %w", err)
			}

			store := config.NewStore(dir, logging.NewNop())
			if !force {
				if _, err := os.Stat(store.Path()); err == nil {
					return fmt.Errorf("config file already exists at %s (use --force to replace it)", store.Path())
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := store.Save(config.Default()); err != nil {
				return fmt.Errorf("write default config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration if present")
	return cmd
}
