package components

import (
	"strings"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/series"
	"nathanbeddoewebdev/bwdash/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
)

const (
	cdnDataSet = "cdn"
	p2pDataSet = "p2p"

	// headroom keeps the highest line off the top border.
	headroom = 1.1
)

var referenceStyles = map[string]lipgloss.Style{
	"max-cdn": styles.MaxCDNLine,
	"max-p2p": styles.MaxP2PLine,
}

// XLabelFormatter adapts a TickLabeler to ntcharts, whose time axis
// carries unix seconds.
func XLabelFormatter(ticks series.TickLabeler) linechart.LabelFormatter {
	return func(i int, v float64) string {
		label, ok := ticks(i, int64(v*1000))
		if !ok {
			return ""
		}
		return label
	}
}

// YLabelFormatter renders rate ticks with series.YTickLabel.
func YLabelFormatter() linechart.LabelFormatter {
	return func(i int, v float64) string {
		return series.YTickLabel(i, v)
	}
}

// BandwidthChart draws the CDN and P2P series in Gbps with a flat line
// at each reference maximum.
func BandwidthChart(width, height int, points []domain.ChartPoint, refs []series.ReferenceLine, ticks series.TickLabeler) string {
	if len(points) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No samples in this window."))
	}

	first := time.UnixMilli(points[0].Timestamp)
	last := time.UnixMilli(points[len(points)-1].Timestamp)
	if !last.After(first) {
		last = first.Add(time.Minute)
	}

	opts := []timeserieslinechart.Option{
		timeserieslinechart.WithTimeRange(first, last),
		timeserieslinechart.WithYRange(0, yCeiling(points, refs)),
		timeserieslinechart.WithXYSteps(4, 3),
		timeserieslinechart.WithYLabelFormatter(YLabelFormatter()),
	}
	if ticks != nil {
		opts = append(opts, timeserieslinechart.WithXLabelFormatter(XLabelFormatter(ticks)))
	}

	chart := timeserieslinechart.New(max(width, 20), max(height, 6), opts...)
	chart.SetDataSetStyle(cdnDataSet, styles.CDNText)
	chart.SetDataSetStyle(p2pDataSet, styles.P2PText)

	for _, p := range points {
		t := time.UnixMilli(p.Timestamp)
		chart.PushDataSet(cdnDataSet, timeserieslinechart.TimePoint{Time: t, Value: p.CDN})
		chart.PushDataSet(p2pDataSet, timeserieslinechart.TimePoint{Time: t, Value: p.P2P})
	}

	for _, ref := range refs {
		if style, ok := referenceStyles[ref.Name]; ok {
			chart.SetDataSetStyle(ref.Name, style)
		}
		chart.PushDataSet(ref.Name, timeserieslinechart.TimePoint{Time: first, Value: ref.Value})
		chart.PushDataSet(ref.Name, timeserieslinechart.TimePoint{Time: last, Value: ref.Value})
	}

	chart.DrawBrailleAll()
	return chart.View()
}

// Legend names the two series and the reference lines.
func Legend(refs []series.ReferenceLine) string {
	parts := []string{
		styles.CDNText.Render("━ CDN"),
		styles.P2PText.Render("━ P2P"),
	}
	for _, ref := range refs {
		style, ok := referenceStyles[ref.Name]
		if !ok {
			style = styles.MutedText
		}
		parts = append(parts, style.Render("┄ "+ref.Label))
	}
	return strings.Join(parts, "   ")
}

// CursorMarker places a caret under the plot at the hovered point.
func CursorMarker(width, index, n int) string {
	if n <= 0 || width <= 0 {
		return ""
	}
	pos := 0
	if n > 1 {
		pos = index * (width - 1) / (n - 1)
	}
	pos = min(max(pos, 0), width-1)
	return strings.Repeat(" ", pos) + styles.AccentText.Render("▲")
}

func yCeiling(points []domain.ChartPoint, refs []series.ReferenceLine) float64 {
	peak := 0.0
	for _, p := range points {
		peak = max(peak, p.CDN, p.P2P)
	}
	for _, r := range refs {
		peak = max(peak, r.Value)
	}
	if peak <= 0 {
		return 1
	}
	return peak * headroom
}
