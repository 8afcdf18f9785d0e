package bandwidth

import (
	"context"
	"fmt"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"

	"github.com/spf13/cobra"
)

// AggregateCommand returns the "bandwidth aggregate" command.
func AggregateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Print one aggregate per delivery path",
		Long: `Ask the backend to aggregate both series over a window.

Examples:
  bwdash bandwidth aggregate
  bwdash bandwidth aggregate --fn average --days 1
  bwdash bandwidth aggregate --fn sum -o json`,
		RunE:         runAggregate,
		SilenceUsage: true,
	}

	addWindowFlags(cmd)
	cmd.Flags().String("fn", string(domain.AggregateMax), "Aggregate: sum, average, max or min")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runAggregate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	fnRaw, _ := cmd.Flags().GetString("fn")
	fn, err := domain.ParseAggregateFunc(fnRaw)
	if err != nil {
		return err
	}

	s, err := loadSettings(cmd)
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
	c := newClient(s, logger)

	var resp domain.AggregateResponse
	err = withSpinner(cmd, "Aggregating bandwidth...", func() error {
		ctx, cancel := context.WithTimeout(cmd.Context(), s.Timeout)
		defer cancel()
		var ferr error
		resp, ferr = c.FetchAggregate(ctx, w, fn)
		return ferr
	})
	if err != nil {
		return describe(err, s.BackendURL)
	}

	if output == "json" {
		return printAggregateJSON(cmd, w, fn, resp)
	}
	printAggregateTable(cmd, w, fn, resp)
	return nil
}
