package series

import (
	"testing"

	"nathanbeddoewebdev/bwdash/internal/domain"
)

func TestBrush_NewCoversAll(t *testing.T) {
	b := NewBrush(10)
	if b.Start != 0 || b.End != 10 {
		t.Errorf("NewBrush(10) = %+v", b)
	}
	if NewBrush(-1).Len() != 0 {
		t.Error("expected empty brush for negative n")
	}
}

func TestBrush_Pan(t *testing.T) {
	tests := []struct {
		name  string
		in    Brush
		delta int
		want  Brush
	}{
		{name: "right", in: Brush{0, 5}, delta: 3, want: Brush{3, 8}},
		{name: "past end", in: Brush{0, 5}, delta: 100, want: Brush{5, 10}},
		{name: "past start", in: Brush{4, 9}, delta: -100, want: Brush{0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Pan(tt.delta, 10); got != tt.want {
				t.Errorf("Pan = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBrush_Resize(t *testing.T) {
	tests := []struct {
		name  string
		in    Brush
		delta int
		want  Brush
	}{
		{name: "shrink", in: Brush{0, 10}, delta: -3, want: Brush{0, 7}},
		{name: "grow capped", in: Brush{2, 6}, delta: 100, want: Brush{2, 10}},
		{name: "keeps two points", in: Brush{5, 10}, delta: -10, want: Brush{5, 7}},
		{name: "keeps two at the tail", in: Brush{9, 10}, delta: -1, want: Brush{8, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Resize(tt.delta, 10); got != tt.want {
				t.Errorf("Resize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBrush_Fit(t *testing.T) {
	if got := NewBrush(10).Fit(10, 20); got != (Brush{0, 20}) {
		t.Errorf("full brush should follow new data, got %+v", got)
	}
	if got := (Brush{2, 8}).Fit(10, 5); got != (Brush{0, 5}) {
		t.Errorf("partial brush wider than the data should cover it all, got %+v", got)
	}
	if got := (Brush{2, 4}).Fit(10, 50); got != (Brush{2, 4}) {
		t.Errorf("partial brush should stay put when data grows, got %+v", got)
	}
}

func TestBrush_FitShrinkAtRightEdge(t *testing.T) {
	b := NewBrush(100).Resize(-90, 100).Pan(1000, 100)
	if b != (Brush{90, 100}) {
		t.Fatalf("setup brush = %+v, want {90 100}", b)
	}

	tests := []struct {
		n    int
		want Brush
	}{
		{n: 80, want: Brush{70, 80}},
		{n: 95, want: Brush{85, 95}},
		{n: 5, want: Brush{0, 5}},
		{n: 1, want: Brush{0, 1}},
		{n: 0, want: Brush{0, 0}},
	}
	for _, tt := range tests {
		got := b.Fit(100, tt.n)
		if got != tt.want {
			t.Errorf("Fit(100, %d) = %+v, want %+v", tt.n, got, tt.want)
		}
		if got.Len() < min(minBrushSpan, tt.n) || got.End > tt.n {
			t.Errorf("Fit(100, %d) shows %d points", tt.n, got.Len())
		}
	}
}

func TestBrush_Apply(t *testing.T) {
	points := make([]domain.ChartPoint, 6)
	for i := range points {
		points[i].Timestamp = int64(i)
	}

	got := Brush{Start: 2, End: 4}.Apply(points)
	if len(got) != 2 || got[0].Timestamp != 2 || got[1].Timestamp != 3 {
		t.Errorf("Apply = %+v", got)
	}

	if got := (Brush{Start: 4, End: 40}).Apply(points); len(got) != 2 {
		t.Errorf("Apply out of range = %d points, want 2", len(got))
	}
}
