package series

import (
	"testing"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/units"
)

func TestDayTicks_NamesEachDayOnce(t *testing.T) {
	day1 := localMillis(2024, time.April, 7, 6)
	day1b := localMillis(2024, time.April, 7, 18)
	day2 := localMillis(2024, time.April, 8, 6)

	points := []domain.ChartPoint{
		{Timestamp: day1, Label: "7. Apr"},
		{Timestamp: day1b},
		{Timestamp: day2, Label: "8. Apr"},
	}
	ticks := DayTicks(points)

	tests := []struct {
		ts        int64
		wantLabel string
		wantOK    bool
	}{
		{ts: day1 - 1000, wantLabel: "7. Apr", wantOK: true},
		{ts: day1b + 1000, wantOK: false},
		{ts: day2 - 1000, wantOK: false},
		{ts: day2 + int64(time.Hour/time.Millisecond), wantLabel: "8. Apr", wantOK: true},
	}

	for i, tt := range tests {
		label, ok := ticks(i, tt.ts)
		if ok != tt.wantOK || label != tt.wantLabel {
			t.Errorf("tick %d at %d = (%q, %v), want (%q, %v)", i, tt.ts, label, ok, tt.wantLabel, tt.wantOK)
		}
	}
}

func TestDayTicks_DenseSeriesLabelsEveryTick(t *testing.T) {
	start := time.Date(2024, time.April, 7, 0, 0, 0, 0, time.Local)
	var resp domain.SeriesResponse
	for ts := start; ts.Before(start.AddDate(0, 0, 10)); ts = ts.Add(5 * time.Minute) {
		resp.CDN = append(resp.CDN, domain.TimePoint{Timestamp: ts.UnixMilli(), Value: 1e9})
		resp.P2P = append(resp.P2P, domain.TimePoint{Timestamp: ts.UnixMilli(), Value: 1e9})
	}

	points, err := Merge(resp, LabelDays)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	ticks := DayTicks(points)

	const tickCount = 9
	var prev string
	for i := range tickCount {
		ts := points[i*(len(points)-1)/(tickCount-1)].Timestamp
		label, ok := ticks(i, ts)
		if !ok {
			t.Errorf("tick %d at %s is blank", i, time.UnixMilli(ts).Format(time.DateTime))
			continue
		}
		if want := units.FormatDayLabel(ts); label != want {
			t.Errorf("tick %d = %q, want %q", i, label, want)
		}
		if label == prev {
			t.Errorf("tick %d repeats %q", i, label)
		}
		prev = label
	}
}

func TestDayTicks_RepeatedCallIsStable(t *testing.T) {
	day1 := localMillis(2024, time.April, 7, 6)
	ticks := DayTicks([]domain.ChartPoint{{Timestamp: day1, Label: "7. Apr"}})

	for range 2 {
		if label, ok := ticks(0, day1); !ok || label != "7. Apr" {
			t.Errorf("tick 0 = (%q, %v), want (%q, true)", label, ok, "7. Apr")
		}
	}
}

func TestDayTicks_NoPoints(t *testing.T) {
	if label, ok := DayTicks(nil)(0, 1000); ok || label != "" {
		t.Errorf("expected blank tick, got (%q, %v)", label, ok)
	}
}

func TestPlainTicks_AlwaysLabels(t *testing.T) {
	ts := localMillis(2024, time.April, 7, 6)
	label, ok := PlainTicks()(3, ts)
	if !ok || label != "7. Apr" {
		t.Errorf("PlainTicks = (%q, %v)", label, ok)
	}
}

func TestYTickLabel(t *testing.T) {
	if got := YTickLabel(0, 0); got != "0" {
		t.Errorf("first tick = %q, want %q", got, "0")
	}
	if got := YTickLabel(2, 12.4); got != "12 Gbps" {
		t.Errorf("later tick = %q, want %q", got, "12 Gbps")
	}
}
