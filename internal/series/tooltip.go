package series

import (
	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/units"
)

// Tooltip is the summary shown for a hovered point.
type Tooltip struct {
	Time           string
	CDN            float64
	P2P            float64
	Total          float64
	SpikeReduction float64 // percent of the total served peer-to-peer
}

// Summarize builds the tooltip for p.
func Summarize(p domain.ChartPoint) Tooltip {
	total := p.CDN + p.P2P
	t := Tooltip{
		Time:  units.FormatTooltipTime(p.Timestamp),
		CDN:   p.CDN,
		P2P:   p.P2P,
		Total: total,
	}
	if total != 0 {
		t.SpikeReduction = p.P2P / total * 100
	}
	return t
}

// ReferenceLine is a horizontal marker at a maximum.
type ReferenceLine struct {
	Name  string
	Value float64 // Gbps
	Label string
}

// ReferenceLines converts backend maxima (bits/s) into the two chart
// markers: the CDN peak and the peer-to-peer throughput peak.
func ReferenceLines(maxima domain.AggregateResponse) []ReferenceLine {
	cdn := units.ToRate(maxima.CDN)
	p2p := units.ToRate(maxima.P2P)
	return []ReferenceLine{
		{Name: "max-cdn", Value: cdn, Label: "Maximum CDN contribution: " + units.FormatRate(cdn)},
		{Name: "max-p2p", Value: p2p, Label: "Maximum throughput: " + units.FormatRate(p2p)},
	}
}
