package components

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/tui/styles"
	"nathanbeddoewebdev/bwdash/internal/units"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// overviewHeight is the fixed height of the brush sparkline.
const overviewHeight = 3

// axisWidth is the space asciigraph reserves for Y-axis labels.
const axisWidth = 9

// BrushOverview renders a sparkline of both paths over the whole window
// with the brushed range marked underneath.
func BrushOverview(width int, cdn, p2p []float64, b series.Brush) string {
	if len(cdn) == 0 && len(p2p) == 0 {
		return styles.MutedText.Render("overview: no data")
	}
	if len(cdn) == 0 {
		cdn = make([]float64, len(p2p))
	}
	if len(p2p) == 0 {
		p2p = make([]float64, len(cdn))
	}

	plotWidth := max(width-axisWidth, 10)

	chart := asciigraph.PlotMany(
		[][]float64{cdn, p2p},
		asciigraph.Height(overviewHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.IndianRed, asciigraph.MediumSeaGreen),
		asciigraph.LabelColor(asciigraph.Default),
	)

	track := strings.Repeat(" ", axisWidth) + BrushTrack(plotWidth, b, len(cdn))
	_, hi := minMax(cdn)
	_, hi2 := minMax(p2p)
	summary := styles.MutedText.Render(fmt.Sprintf("  peak cdn: %s  peak p2p: %s  showing %d of %d samples",
		units.FormatRate(hi), units.FormatRate(hi2), b.Len(), len(cdn)))

	return lipgloss.JoinVertical(lipgloss.Left, chart, styles.AccentText.Render(track), summary)
}

// BrushTrack draws a width-cell track with the brushed part of n points
// filled in.
func BrushTrack(width int, b series.Brush, n int) string {
	if width <= 0 {
		return ""
	}
	if n <= 0 {
		return strings.Repeat("─", width)
	}

	start := b.Start * width / n
	end := (b.End*width + n - 1) / n
	end = min(max(end, start+1), width)

	return strings.Repeat("─", start) + strings.Repeat("█", end-start) + strings.Repeat("─", width-end)
}

// minMax returns the minimum and maximum values from a slice.
func minMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi := data[0], data[0]
	for _, v := range data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
