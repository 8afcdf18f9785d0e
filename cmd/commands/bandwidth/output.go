package bandwidth

import (
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/units"

	"github.com/spf13/cobra"
)

const timeLayout = "2006-01-02 15:04"

// describe adds a hint for the error categories a user can act on.
func describe(err error, backendURL string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return fmt.Errorf("%w\n\nStore a backend token with: bwdash auth login", err)
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fmt.Errorf("%w\n\nIs the backend at %s running? Try: bwdash backend serve", err, backendURL)
	default:
		return err
	}
}

type showJSON struct {
	Window domain.Window       `json:"window"`
	Maxima maximaJSON          `json:"maxima"`
	Points []domain.ChartPoint `json:"points"`
}

type maximaJSON struct {
	CDNGbps float64 `json:"cdn_gbps"`
	P2PGbps float64 `json:"p2p_gbps"`
}

// printShowJSON encodes the merged points and maxima as indented JSON.
func printShowJSON(cmd *cobra.Command, result domain.Result, points []domain.ChartPoint) error {
	out := showJSON{
		Window: result.Window,
		Maxima: maximaJSON{
			CDNGbps: units.ToRate(result.Maxima.CDN),
			P2PGbps: units.ToRate(result.Maxima.P2P),
		},
		Points: points,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// printShowTable prints the reference lines and then every Nth sample.
// Labelled points are always printed so no day boundary is skipped.
func printShowTable(cmd *cobra.Command, result domain.Result, points []domain.ChartPoint, every int) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Window: %s\n", result.Window)
	for _, ref := range series.ReferenceLines(result.Maxima) {
		fmt.Fprintln(out, ref.Label)
	}
	fmt.Fprintln(out)

	if len(points) == 0 {
		fmt.Fprintln(out, "No samples in this window.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tDAY\tCDN\tP2P\tTOTAL\tP2P SHARE")
	fmt.Fprintln(w, "----\t---\t---\t---\t-----\t---------")
	for i, p := range points {
		if i%every != 0 && p.Label == "" {
			continue
		}
		tip := series.Summarize(p)
		day := p.Label
		if day == "" {
			day = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			time.UnixMilli(p.Timestamp).Local().Format(timeLayout),
			day,
			units.FormatRate(tip.CDN),
			units.FormatRate(tip.P2P),
			units.FormatRate(tip.Total),
			units.FormatPercent(tip.SpikeReduction),
		)
	}
	w.Flush()
}

type aggregateJSON struct {
	Function domain.AggregateFunc `json:"function"`
	Window   domain.Window        `json:"window"`
	CDN      float64              `json:"cdn_bps"`
	P2P      float64              `json:"p2p_bps"`
	CDNGbps  float64              `json:"cdn_gbps"`
	P2PGbps  float64              `json:"p2p_gbps"`
}

func printAggregateJSON(cmd *cobra.Command, w domain.Window, fn domain.AggregateFunc, resp domain.AggregateResponse) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(aggregateJSON{
		Function: fn,
		Window:   w,
		CDN:      resp.CDN,
		P2P:      resp.P2P,
		CDNGbps:  units.ToRate(resp.CDN),
		P2PGbps:  units.ToRate(resp.P2P),
	})
}

func printAggregateTable(cmd *cobra.Command, win domain.Window, fn domain.AggregateFunc, resp domain.AggregateResponse) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Window:\t%s\n", win)
	fmt.Fprintf(w, "  Function:\t%s\n", fn)
	fmt.Fprintf(w, "  CDN:\t%s\n", units.FormatRate(units.ToRate(resp.CDN)))
	fmt.Fprintf(w, "  P2P:\t%s\n", units.FormatRate(units.ToRate(resp.P2P)))
	w.Flush()
}
