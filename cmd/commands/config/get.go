package config

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/config"
	"nathanbeddoewebdev/bwdash/internal/tui"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [key]",
		Short: "Get a configuration value",
		Long: "Get a persistent configuration value.\n\n" +
			"If no key is provided and running in a terminal, opens an interactive\n" +
			"config viewer where you can browse and edit all settings.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  bwdash config get               # interactive viewer\n" +
			"  bwdash config get backend-url   # print a single value",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runGet,
		SilenceUsage: true,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if err := tui.RunConfigView(); err != nil {
				return fmt.Errorf("config view failed: %w", err)
			}
			return nil
		}
		return listAll(cmd)
	}

	spec := config.Lookup(args[0])
	if spec == nil {
		return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value := spec.Get(cfg)
	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "not set (default: %s)\n", spec.Default)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

// listAll prints every key, for non-interactive use.
func listAll(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, spec := range config.Keys {
		value := spec.Get(cfg)
		if value == "" {
			value = spec.Default + " (default)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", spec.Name, value)
	}
	return nil
}
