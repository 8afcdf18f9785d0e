package bandwidth

import (
	"fmt"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/series"

	"github.com/spf13/cobra"
)

// ShowCommand returns the "bandwidth show" command.
func ShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print merged bandwidth samples for a window",
		Long: `Fetch the CDN and P2P series together with their maxima, merge them
into Gbps samples and print them.

Examples:
  bwdash bandwidth show
  bwdash bandwidth show --days 3
  bwdash bandwidth show --from 2024-04-01 --to 2024-04-05 --every 12
  bwdash bandwidth show -o json`,
		RunE:         runShow,
		SilenceUsage: true,
	}

	addWindowFlags(cmd)
	cmd.Flags().String("labels", "", "Day label mode: days or none (default from config)")
	cmd.Flags().Int("every", 1, "Print every Nth sample")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}
	every, _ := cmd.Flags().GetInt("every")
	if every < 1 {
		return fmt.Errorf("--every must be at least 1")
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

	logger, err := newLogger(cmd.ErrOrStderr(), s)
	if err != nil {
		return err
	}
	o, cleanup := newOrchestrator(newClient(s, logger), s, logger)
	defer cleanup()

	var result domain.Result
	err = withSpinner(cmd, "Fetching bandwidth...", func() error {
		var ferr error
		result, ferr = fetchWindow(cmd.Context(), o, w)
		return ferr
	})
	if err != nil {
		return describe(err, s.BackendURL)
	}

	points, err := series.Merge(result.Series, mode)
	if err != nil {
		return err
	}

	if output == "json" {
		return printShowJSON(cmd, result, points)
	}
	printShowTable(cmd, result, points, every)
	return nil
}
