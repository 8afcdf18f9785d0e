package cmd

import (
	"fmt"
	"os"

	"nathanbeddoewebdev/bwdash/cmd/commands/auth"
	"nathanbeddoewebdev/bwdash/cmd/commands/backend"
	"nathanbeddoewebdev/bwdash/cmd/commands/bandwidth"
	cfgcmd "nathanbeddoewebdev/bwdash/cmd/commands/config"
	"nathanbeddoewebdev/bwdash/cmd/commands/history"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "bwdash",
		Short: "Visualize CDN and peer-to-peer bandwidth",
		Long: `bwdash fetches CDN and peer-to-peer bandwidth series from a backend and
shows them as a terminal dashboard with a date range picker, a hover
tooltip and maximum reference lines.

Quick start:
  bwdash backend serve &              # Local synthetic backend on :3000
  bwdash bandwidth dashboard          # Interactive chart
  bwdash bandwidth show --days 1      # Merged samples as a table
  bwdash config set backend-url URL   # Point at a real backend`,
		PersistentPreRunE: validateLogLevel,
	}

	cmd.PersistentFlags().String("log-level", "", "Log verbosity: debug, info, warn or error (overrides config)")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(backend.NewCommand())
	cmd.AddCommand(bandwidth.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(history.NewCommand())

	return cmd
}

func validateLogLevel(cmd *cobra.Command, args []string) error {
	flag := cmd.Flag("log-level")
	if flag == nil || !flag.Changed {
		return nil
	}
	if _, err := log.ParseLevel(flag.Value.String()); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.EnableTraverseRunHooks = true

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
