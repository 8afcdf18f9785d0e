package series

import (
	"math"
	"testing"

	"nathanbeddoewebdev/bwdash/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	got := Summarize(domain.ChartPoint{Timestamp: 0, CDN: 1, P2P: 3})

	if got.Total != 4 {
		t.Errorf("Total = %v, want 4", got.Total)
	}
	if got.SpikeReduction != 75 {
		t.Errorf("SpikeReduction = %v, want 75", got.SpikeReduction)
	}
	if got.Time == "" {
		t.Error("expected formatted time")
	}
}

func TestSummarize_ZeroTotal(t *testing.T) {
	got := Summarize(domain.ChartPoint{})
	if got.SpikeReduction != 0 || math.IsNaN(got.SpikeReduction) {
		t.Errorf("SpikeReduction = %v, want 0", got.SpikeReduction)
	}
}

func TestReferenceLines(t *testing.T) {
	got := ReferenceLines(domain.AggregateResponse{CDN: 4.2e9, P2P: 12.346e9})

	want := []ReferenceLine{
		{Name: "max-cdn", Value: 4.2, Label: "Maximum CDN contribution: 4.20 Gbps"},
		{Name: "max-p2p", Value: 12.346, Label: "Maximum throughput: 12.35 Gbps"},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b float64) bool { return math.Abs(a-b) < 1e-9 })); diff != "" {
		t.Errorf("reference lines mismatch (-want +got):\n%s", diff)
	}
}
