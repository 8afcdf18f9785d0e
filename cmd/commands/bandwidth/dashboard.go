package bandwidth

import (
	"fmt"
	"os"
	"time"

	"nathanbeddoewebdev/bwdash/internal/cache"
	"nathanbeddoewebdev/bwdash/internal/logging"
	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// DashboardCommand returns the "bandwidth dashboard" command.
func DashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive bandwidth dashboard",
		Long: `Open a full-screen chart of CDN and P2P bandwidth with a date range
picker, hover tooltip and brush overview.

Logs go to bwdash.log in the user cache directory while the dashboard
is open.

Examples:
  bwdash bandwidth dashboard
  bwdash bandwidth dashboard --days 3 --labels none`,
		RunE:         runDashboard,
		SilenceUsage: true,
	}

	addWindowFlags(cmd)
	cmd.Flags().String("labels", "", "Day label mode: days or none (default from config)")
	cmd.Flags().Bool("no-cache", false, "Do not load or save the last result")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard needs an interactive terminal; use \"bwdash bandwidth show\" instead")
	}

	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	labelsRaw, _ := cmd.Flags().GetString("labels")
	if labelsRaw == "" {
		labelsRaw = s.LabelMode
	}
	mode, err := series.ParseLabelMode(labelsRaw)
	if err != nil {
		return err
	}

	w, err := resolveWindow(cmd, time.Now(), s.WindowDays)
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(s.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	o, cleanup := newOrchestrator(newClient(s, logger), s, logger)
	defer cleanup()

	var c *cache.Cache
	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		c = cache.NewDefault()
	}

	return tui.RunDashboard(tui.DashboardOptions{
		Orchestrator: o,
		Cache:        c,
		Logger:       logger,
		LabelMode:    mode,
		Window:       w,
		Backend:      s.BackendURL,
	})
}
