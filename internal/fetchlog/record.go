package fetchlog

import (
	"context"
	"time"

	"nathanbeddoewebdev/bwdash/internal/orchestrator"
)

const (
	OutcomeSettled = "settled"
	OutcomeFailed  = "failed"
	OutcomeStale   = "stale"
)

// Outcomes lists every recorded outcome.
var Outcomes = []string{OutcomeSettled, OutcomeFailed, OutcomeStale}

// Entry is one persisted fetch cycle.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Seq        uint64    `json:"seq"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	Points     int       `json:"points"`
	DurationMs int64     `json:"duration_ms"`
}

// FromOutcome converts an orchestrator cycle outcome into an entry.
func FromOutcome(o orchestrator.Outcome) Entry {
	e := Entry{
		Seq:        o.Seq,
		From:       o.Window.From,
		To:         o.Window.To,
		Outcome:    o.State.String(),
		Points:     o.Points,
		DurationMs: o.Duration.Milliseconds(),
	}
	if o.Err != nil {
		e.Detail = o.Err.Error()
	}
	return e
}

// Recorder adapts a Repository to orchestrator.Recorder.
type Recorder struct {
	Repo Repository
}

// Record persists a cycle outcome.
func (r Recorder) Record(ctx context.Context, o orchestrator.Outcome) error {
	entry := FromOutcome(o)
	return r.Repo.Save(ctx, &entry)
}
