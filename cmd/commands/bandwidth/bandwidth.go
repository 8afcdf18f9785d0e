package bandwidth

import (
	"fmt"

	"nathanbeddoewebdev/bwdash/internal/util"

	"github.com/spf13/cobra"
)

// NewCommand returns the "bandwidth" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bandwidth",
		Short: "Inspect CDN and peer-to-peer bandwidth",
		Long: `Fetch bandwidth series and aggregates from the backend, or open the
interactive dashboard.

The backend URL comes from the backend-url config key unless --backend-url
is given.`,
		PersistentPreRunE: validateBackendFlag,
		SilenceUsage:      true,
	}

	cmd.AddCommand(ShowCommand())
	cmd.AddCommand(AggregateCommand())
	cmd.AddCommand(DashboardCommand())

	cmd.PersistentFlags().String("backend-url", "", "Backend base URL (overrides config)")

	return cmd
}

// validateBackendFlag rejects a malformed --backend-url before any request.
func validateBackendFlag(cmd *cobra.Command, args []string) error {
	flag := cmd.Flag("backend-url")
	if flag == nil || !flag.Changed {
		return nil
	}
	if err := util.ValidateBackendURL(flag.Value.String()); err != nil {
		return fmt.Errorf("invalid --backend-url: %w", err)
	}
	return nil
}
