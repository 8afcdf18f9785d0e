package history

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/bwdash/internal/fetchlog"

	"github.com/spf13/cobra"
)

func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent fetch cycles",
		Long: `List recent fetch cycles stored locally, newest first.

Examples:
  bwdash history list
  bwdash history list --limit 50
  bwdash history list --outcome failed
  bwdash history list -o json`,
		RunE:         runList,
		SilenceUsage: true,
	}

	cmd.Flags().Int("limit", 25, "Number of entries to display")
	cmd.Flags().String("outcome", "", "Filter by outcome: settled, failed or stale")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than 0")
	}

	outcome, _ := cmd.Flags().GetString("outcome")
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	if outcome != "" && !slices.Contains(fetchlog.Outcomes, outcome) {
		return fmt.Errorf("unknown outcome %q (valid: %s)", outcome, strings.Join(fetchlog.Outcomes, ", "))
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = "table"
	}
	if output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q", output)
	}

	repo, err := fetchlog.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	var entries []fetchlog.Entry
	if outcome != "" {
		entries, err = repo.ListByOutcome(outcome, limit)
	} else {
		entries, err = repo.List(limit)
	}
	if err != nil {
		return err
	}

	if output == "json" {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No fetch history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tSEQ\tWINDOW\tOUTCOME\tPOINTS\tDURATION\tDETAIL")
	fmt.Fprintln(w, "----\t---\t------\t-------\t------\t--------\t------")
	for _, entry := range entries {
		detail := entry.Detail
		if detail == "" {
			detail = "-"
		}

		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%s\t%s\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04:05"),
			entry.Seq,
			formatWindow(entry.From, entry.To),
			entry.Outcome,
			entry.Points,
			formatDuration(entry.DurationMs),
			detail,
		)
	}
	w.Flush()
	return nil
}

func formatWindow(from, to time.Time) string {
	const layout = "01-02 15:04"
	return from.Local().Format(layout) + " → " + to.Local().Format(layout)
}

func formatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	d := time.Duration(ms) * time.Millisecond
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
