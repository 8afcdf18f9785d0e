// Package mockbackend serves deterministic synthetic bandwidth data over
// the same HTTP contract as the real backend.
package mockbackend

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"nathanbeddoewebdev/bwdash/internal/daterange"
	"nathanbeddoewebdev/bwdash/internal/domain"
)

const (
	DefaultStep = 5 * time.Minute

	cdnBase      = 4e9
	cdnAmplitude = 3e9
	p2pBase      = 6e9
	p2pAmplitude = 5e9
	noiseRatio   = 0.08
)

// Generator produces samples aligned to Step inside the retention window
// ending at Now. Values depend only on the timestamp.
type Generator struct {
	Step time.Duration
	Now  func() time.Time
}

// NewGenerator returns a generator with the given sample step.
func NewGenerator(step time.Duration) *Generator {
	if step <= 0 {
		step = DefaultStep
	}
	return &Generator{Step: step, Now: time.Now}
}

// Series returns every sample in [from, to], clipped to retention.
func (g *Generator) Series(from, to int64) domain.SeriesResponse {
	resp := domain.SeriesResponse{CDN: []domain.TimePoint{}, P2P: []domain.TimePoint{}}
	for _, ts := range g.timestamps(from, to) {
		cdn, p2p := Sample(ts)
		resp.CDN = append(resp.CDN, domain.TimePoint{Timestamp: ts, Value: cdn})
		resp.P2P = append(resp.P2P, domain.TimePoint{Timestamp: ts, Value: p2p})
	}
	return resp
}

// Aggregate applies fn to each path over [from, to]. An empty window
// aggregates to zero.
func (g *Generator) Aggregate(from, to int64, fn domain.AggregateFunc) domain.AggregateResponse {
	s := g.Series(from, to)
	return domain.AggregateResponse{
		CDN: reduce(s.CDN, fn),
		P2P: reduce(s.P2P, fn),
	}
}

func (g *Generator) timestamps(from, to int64) []int64 {
	now := g.Now()
	oldest := daterange.ShiftDate(now, -daterange.RetentionDays).UnixMilli()
	from = max(from, oldest)
	to = min(to, now.UnixMilli())

	step := g.Step.Milliseconds()
	if step <= 0 || from > to {
		return nil
	}

	first := from - mod(from, step)
	if first < from {
		first += step
	}

	out := make([]int64, 0, (to-first)/step+1)
	for ts := first; ts <= to; ts += step {
		out = append(out, ts)
	}
	return out
}

// Sample returns the CDN and P2P rate in bits per second at ts. Both
// follow a daily curve peaking in the UTC evening with a little
// deterministic jitter.
func Sample(ts int64) (cdn, p2p float64) {
	t := time.UnixMilli(ts).UTC()
	hour := float64(t.Hour()) + float64(t.Minute())/60
	phase := math.Sin(2 * math.Pi * (hour - 14) / 24)

	j := jitter(ts)
	cdn = (cdnBase + cdnAmplitude*phase) * (1 + noiseRatio*j)
	p2p = (p2pBase + p2pAmplitude*phase) * (1 + noiseRatio*jitter(ts+1))
	return math.Max(cdn, 0), math.Max(p2p, 0)
}

// jitter maps ts to [-1, 1).
func jitter(ts int64) float64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(ts))
	h.Write(buf[:])
	return float64(h.Sum64()%2000)/1000 - 1
}

func reduce(points []domain.TimePoint, fn domain.AggregateFunc) float64 {
	if len(points) == 0 {
		return 0
	}

	acc := points[0].Value
	sum := 0.0
	for _, p := range points {
		sum += p.Value
		switch fn {
		case domain.AggregateMax:
			acc = math.Max(acc, p.Value)
		case domain.AggregateMin:
			acc = math.Min(acc, p.Value)
		}
	}

	switch fn {
	case domain.AggregateSum:
		return sum
	case domain.AggregateAverage:
		return sum / float64(len(points))
	default:
		return acc
	}
}

func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
