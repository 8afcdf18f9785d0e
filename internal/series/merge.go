// Package series turns raw backend responses into chart-ready points and
// derives the values the chart, tooltip and reference lines display.
package series

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/units"
)

// LabelMode selects how merged points are labelled for the X axis.
type LabelMode string

const (
	// LabelDays gives the first point of each local calendar day a
	// "7. Apr" label and leaves the rest empty. This is the default.
	LabelDays LabelMode = "days"

	// LabelNone leaves every label empty; tick placement is left to the
	// chart's own minimum-gap spacing over raw timestamps.
	LabelNone LabelMode = "none"
)

// ParseLabelMode resolves a label mode name. An empty string yields LabelDays.
func ParseLabelMode(s string) (LabelMode, error) {
	switch LabelMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", LabelDays:
		return LabelDays, nil
	case LabelNone:
		return LabelNone, nil
	default:
		return "", fmt.Errorf("unknown label mode %q (valid: days, none)", s)
	}
}

// Merge zips the CDN and P2P series into chart points, converting both
// rates to Gbps. The output has the same length and order as the input.
// Mismatched series lengths fail with domain.ErrShapeMismatch.
func Merge(resp domain.SeriesResponse, mode LabelMode) ([]domain.ChartPoint, error) {
	if len(resp.CDN) != len(resp.P2P) {
		return nil, fmt.Errorf("cannot merge %d cdn samples with %d p2p samples: %w",
			len(resp.CDN), len(resp.P2P), domain.ErrShapeMismatch)
	}

	points := make([]domain.ChartPoint, len(resp.CDN))
	seen := make(map[string]struct{})

	for i, cdn := range resp.CDN {
		p := domain.ChartPoint{
			Timestamp: cdn.Timestamp,
			CDN:       units.ToRate(cdn.Value),
			P2P:       units.ToRate(resp.P2P[i].Value),
		}

		if mode == LabelDays {
			label := units.FormatDayLabel(cdn.Timestamp)
			if _, dup := seen[label]; !dup {
				seen[label] = struct{}{}
				p.Label = label
			}
		}

		points[i] = p
	}

	return points, nil
}

// Timestamps returns the timestamp of every point.
func Timestamps(points []domain.ChartPoint) []int64 {
	out := make([]int64, len(points))
	for i, p := range points {
		out[i] = p.Timestamp
	}
	return out
}

// Values extracts one series from the points.
func Values(points []domain.ChartPoint, pick func(domain.ChartPoint) float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = pick(p)
	}
	return out
}

// CDN picks the CDN rate of a point.
func CDN(p domain.ChartPoint) float64 { return p.CDN }

// P2P picks the P2P rate of a point.
func P2P(p domain.ChartPoint) float64 { return p.P2P }
