package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TimePoint is a single backend sample: an epoch-millisecond timestamp and
// a rate in bits per second. On the wire it is a two-element array.
type TimePoint struct {
	Timestamp int64
	Value     float64
}

// MarshalJSON encodes the point as [timestamp, value].
func (p TimePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{float64(p.Timestamp), p.Value})
}

// UnmarshalJSON decodes a [timestamp, value] pair.
func (p *TimePoint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("time point: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("time point: expected [timestamp, value], got %d elements", len(pair))
	}
	p.Timestamp = int64(pair[0])
	p.Value = pair[1]
	return nil
}

// SeriesResponse holds the two parallel delivery-path series for a window.
// Index i of CDN and P2P refer to the same instant; nothing re-aligns them.
type SeriesResponse struct {
	CDN []TimePoint `json:"cdn"`
	P2P []TimePoint `json:"p2p"`
}

// Len returns the number of CDN samples.
func (s SeriesResponse) Len() int { return len(s.CDN) }

// AggregateResponse holds one scalar per delivery path.
type AggregateResponse struct {
	CDN float64 `json:"cdn"`
	P2P float64 `json:"p2p"`
}

// AggregateFunc names the server-side aggregation applied over a window.
type AggregateFunc string

const (
	AggregateSum     AggregateFunc = "sum"
	AggregateAverage AggregateFunc = "average"
	AggregateMax     AggregateFunc = "max"
	AggregateMin     AggregateFunc = "min"
)

// AggregateFuncs lists every supported aggregation in display order.
var AggregateFuncs = []AggregateFunc{AggregateSum, AggregateAverage, AggregateMax, AggregateMin}

// ParseAggregateFunc resolves a case-insensitive aggregation name.
func ParseAggregateFunc(s string) (AggregateFunc, error) {
	fn := AggregateFunc(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AggregateFuncs {
		if fn == known {
			return fn, nil
		}
	}
	return "", fmt.Errorf("unknown aggregate %q (valid: sum, average, max, min)", s)
}

// ChartPoint is one merged, unit-converted sample ready for rendering.
// Rates are in gigabits per second. Label is empty unless this point is
// the first of its calendar day within the merged sequence.
type ChartPoint struct {
	Timestamp int64   `json:"timestamp"`
	CDN       float64 `json:"cdn"`
	P2P       float64 `json:"p2p"`
	Label     string  `json:"label,omitempty"`
}

// Result is the unit the orchestrator publishes: the raw series and the
// maxima for one window, always together.
type Result struct {
	Window Window            `json:"window"`
	Series SeriesResponse    `json:"series"`
	Maxima AggregateResponse `json:"maxima"`
}
