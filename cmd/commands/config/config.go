package config

import (
	"nathanbeddoewebdev/bwdash/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bwdash configuration",
		Long: "View and modify persistent bwdash settings.\n\n" +
			"Configuration is stored at ~/.config/bwdash/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())
	cmd.AddCommand(UnsetCommand())

	return cmd
}
