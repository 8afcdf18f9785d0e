package config

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/config"

	"github.com/spf13/cobra"
)

// UnsetCommand returns the "config unset" command.
func UnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Revert a configuration value to its default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec := config.Lookup(args[0])
			if spec == nil {
				return fmt.Errorf("unknown configuration key %q (valid: %s)", args[0], strings.Join(config.KeyNames(), ", "))
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			spec.Clear(cfg)
			if err := cfg.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s reset to default (%s)\n", spec.Name, spec.Default)
			return nil
		},
		SilenceUsage: true,
	}
}
