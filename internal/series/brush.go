package series

import "nathanbeddoewebdev/bwdash/internal/domain"

// minBrushSpan is the smallest number of points a brush keeps visible.
const minBrushSpan = 2

// Brush selects the visible index range [Start, End) of a point sequence.
type Brush struct {
	Start int
	End   int
}

// NewBrush returns a brush covering all n points.
func NewBrush(n int) Brush {
	return Brush{Start: 0, End: max(n, 0)}
}

// Len returns the number of selected points.
func (b Brush) Len() int { return b.End - b.Start }

// Pan moves the brush by delta points, keeping its width, within [0, n].
func (b Brush) Pan(delta, n int) Brush {
	width := b.Len()
	start := b.Start + delta
	start = min(start, n-width)
	start = max(start, 0)
	return Brush{Start: start, End: min(start+width, n)}.normalize(n)
}

// Resize grows (delta > 0) or shrinks the brush from its right edge.
// It never drops below minBrushSpan points while enough points exist.
func (b Brush) Resize(delta, n int) Brush {
	end := b.End + delta
	end = max(end, b.Start+min(minBrushSpan, n-b.Start))
	end = min(end, n)
	out := Brush{Start: b.Start, End: end}
	if out.Len() < min(minBrushSpan, n) {
		out.Start = max(out.End-minBrushSpan, 0)
	}
	return out.normalize(n)
}

// Fit re-anchors the brush after the point count changed to n. A brush
// that covered everything keeps covering everything; otherwise the width
// is kept where possible and the brush slides left to stay inside [0, n].
func (b Brush) Fit(prevN, n int) Brush {
	if b.Start == 0 && b.End >= prevN {
		return NewBrush(n)
	}
	n = max(n, 0)
	width := max(min(b.Len(), n), min(minBrushSpan, n))
	start := max(min(b.Start, n-width), 0)
	return Brush{Start: start, End: start + width}.normalize(n)
}

// Apply returns the selected sub-slice of points.
func (b Brush) Apply(points []domain.ChartPoint) []domain.ChartPoint {
	b = b.normalize(len(points))
	return points[b.Start:b.End]
}

func (b Brush) normalize(n int) Brush {
	n = max(n, 0)
	b.Start = min(max(b.Start, 0), n)
	b.End = min(max(b.End, b.Start), n)
	return b
}
