package mockbackend

import (
	"math"
	"testing"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
)

func fixedGenerator() (*Generator, time.Time) {
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	g := NewGenerator(DefaultStep)
	g.Now = func() time.Time { return now }
	return g, now
}

func TestSeries_AlignedToStep(t *testing.T) {
	g, now := fixedGenerator()
	from := now.Add(-time.Hour).UnixMilli() + 1
	to := now.UnixMilli()

	s := g.Series(from, to)

	if s.Len() != 12 {
		t.Fatalf("expected 12 samples, got %d", s.Len())
	}
	if len(s.P2P) != len(s.CDN) {
		t.Fatalf("series lengths differ: %d vs %d", len(s.CDN), len(s.P2P))
	}
	step := DefaultStep.Milliseconds()
	for i, p := range s.CDN {
		if p.Timestamp%step != 0 {
			t.Errorf("sample %d not aligned: %d", i, p.Timestamp)
		}
		if p.Timestamp < from || p.Timestamp > to {
			t.Errorf("sample %d outside window: %d", i, p.Timestamp)
		}
		if s.P2P[i].Timestamp != p.Timestamp {
			t.Errorf("sample %d timestamps differ", i)
		}
	}
}

func TestSeries_ClippedToRetention(t *testing.T) {
	g, now := fixedGenerator()

	s := g.Series(now.AddDate(0, 0, -30).UnixMilli(), now.AddDate(0, 0, 1).UnixMilli())

	oldest := now.AddDate(0, 0, -15).UnixMilli()
	if first := s.CDN[0].Timestamp; first < oldest {
		t.Errorf("first sample %d before retention start %d", first, oldest)
	}
	if last := s.CDN[s.Len()-1].Timestamp; last > now.UnixMilli() {
		t.Errorf("last sample %d after now", last)
	}
}

func TestSeries_EmptyOutsideRetention(t *testing.T) {
	g, now := fixedGenerator()

	s := g.Series(now.AddDate(0, 0, -40).UnixMilli(), now.AddDate(0, 0, -30).UnixMilli())
	if s.Len() != 0 || s.CDN == nil || s.P2P == nil {
		t.Errorf("expected empty non-nil series, got %+v", s)
	}
}

func TestSample_DeterministicAndNonNegative(t *testing.T) {
	for ts := int64(0); ts < 24*int64(time.Hour/time.Millisecond); ts += DefaultStep.Milliseconds() {
		cdn, p2p := Sample(ts)
		cdn2, p2p2 := Sample(ts)
		if cdn != cdn2 || p2p != p2p2 {
			t.Fatalf("Sample(%d) not deterministic", ts)
		}
		if cdn < 0 || p2p < 0 {
			t.Fatalf("Sample(%d) negative: %v %v", ts, cdn, p2p)
		}
	}
}

func TestAggregate(t *testing.T) {
	g, now := fixedGenerator()
	from, to := now.Add(-6*time.Hour).UnixMilli(), now.UnixMilli()
	s := g.Series(from, to)

	var sum, hi, lo float64
	lo = math.Inf(1)
	for _, p := range s.CDN {
		sum += p.Value
		hi = math.Max(hi, p.Value)
		lo = math.Min(lo, p.Value)
	}

	tests := []struct {
		fn   domain.AggregateFunc
		want float64
	}{
		{fn: domain.AggregateSum, want: sum},
		{fn: domain.AggregateAverage, want: sum / float64(s.Len())},
		{fn: domain.AggregateMax, want: hi},
		{fn: domain.AggregateMin, want: lo},
	}
	for _, tt := range tests {
		t.Run(string(tt.fn), func(t *testing.T) {
			got := g.Aggregate(from, to, tt.fn).CDN
			if math.Abs(got-tt.want) > 1e-6*math.Abs(tt.want) {
				t.Errorf("%s = %v, want %v", tt.fn, got, tt.want)
			}
		})
	}
}

func TestAggregate_EmptyWindowIsZero(t *testing.T) {
	g, now := fixedGenerator()
	got := g.Aggregate(now.AddDate(0, 0, -40).UnixMilli(), now.AddDate(0, 0, -30).UnixMilli(), domain.AggregateMax)
	if got != (domain.AggregateResponse{}) {
		t.Errorf("expected zero aggregate, got %+v", got)
	}
}
