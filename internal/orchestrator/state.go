package orchestrator

import (
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
)

// State is the published lifecycle of the dashboard's data.
type State int

const (
	Idle State = iota
	Fetching
	Settled
	Failed

	// Stale marks a cycle whose result arrived after a newer request was
	// issued. It is only ever reported to the Recorder and the log; the
	// published state never becomes Stale.
	Stale
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Settled:
		return "settled"
	case Failed:
		return "failed"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Update is published once per cycle that is still current when it
// completes. Result is set for Settled, Err for Failed.
type Update struct {
	Seq    uint64
	State  State
	Window domain.Window
	Result *domain.Result
	Err    error
}

// Snapshot is the orchestrator's current view. Result is the last settled
// result and survives later failures.
type Snapshot struct {
	State  State
	Seq    uint64
	Window domain.Window
	Result *domain.Result
	Err    error
}

// Outcome describes how a single cycle ended, current or not.
type Outcome struct {
	Seq      uint64
	Window   domain.Window
	State    State
	Err      error
	Points   int
	Duration time.Duration
}
