// Package orchestrator issues the paired series and maxima requests for a
// window and publishes only the outcome of the most recent request.
package orchestrator

import (
	"context"
	"io"
	"sync"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const defaultUpdateBuffer = 16

// Fetcher is the backend the orchestrator talks to.
type Fetcher interface {
	FetchSeries(ctx context.Context, w domain.Window) (domain.SeriesResponse, error)
	FetchAggregate(ctx context.Context, w domain.Window, fn domain.AggregateFunc) (domain.AggregateResponse, error)
}

// Recorder receives every cycle outcome, including stale ones.
type Recorder interface {
	Record(ctx context.Context, o Outcome) error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout bounds each backend request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithLogger sets the logger used for cycle diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder reports every cycle outcome to r.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) { o.recorder = r }
}

// WithUpdateBuffer sets the capacity of the Updates channel. When the
// buffer is full the oldest unread update is dropped.
func WithUpdateBuffer(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// Orchestrator tracks a monotonically increasing request sequence. A cycle
// may publish only if its sequence number is still the latest when both of
// its requests have completed.
type Orchestrator struct {
	fetcher  Fetcher
	timeout  time.Duration
	logger   *log.Logger
	recorder Recorder
	buffer   int

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	updates chan Update

	mu     sync.Mutex
	seq    uint64
	snap   Snapshot
	closed bool
}

// New returns an idle orchestrator backed by fetcher.
func New(fetcher Fetcher, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher: fetcher,
		logger:  log.New(io.Discard),
		buffer:  defaultUpdateBuffer,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.ctx, o.cancel = context.WithCancel(context.Background())
	o.updates = make(chan Update, o.buffer)
	return o
}

// Request starts a fetch cycle for w. An invalid window issues nothing and
// leaves the state untouched; ok is false in that case.
func (o *Orchestrator) Request(w domain.Window) (seq uint64, ok bool) {
	if !w.Valid() {
		o.logger.Debug("ignoring request for incomplete window", "window", w)
		return 0, false
	}

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return 0, false
	}
	o.seq++
	seq = o.seq
	o.snap.State = Fetching
	o.snap.Seq = seq
	o.snap.Window = w
	o.snap.Err = nil
	o.wg.Add(1)
	o.mu.Unlock()

	o.logger.Debug("fetch cycle started", "seq", seq, "window", w)
	go o.run(seq, w)
	return seq, true
}

// Snapshot returns the current state.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snap
}

// Updates returns the channel on which current cycle outcomes are
// published. It is closed by Close.
func (o *Orchestrator) Updates() <-chan Update {
	return o.updates
}

// Close cancels in-flight cycles, waits for them and closes Updates.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.mu.Unlock()

	o.cancel()
	o.wg.Wait()
	close(o.updates)
}

func (o *Orchestrator) run(seq uint64, w domain.Window) {
	defer o.wg.Done()

	start := time.Now()
	result, err := o.fetch(o.ctx, w)
	outcome := Outcome{Seq: seq, Window: w, Err: err, Duration: time.Since(start)}

	o.mu.Lock()
	switch {
	case o.closed:
		o.mu.Unlock()
		return
	case seq != o.seq:
		latest := o.seq
		o.mu.Unlock()
		outcome.State = Stale
		outcome.Points = result.Series.Len()
		o.logger.Debug("discarding stale result", "seq", seq, "latest", latest, "window", w)
		o.record(outcome)
		return
	}

	update := Update{Seq: seq, Window: w}
	if err != nil {
		update.State, update.Err = Failed, err
		o.snap.State, o.snap.Err = Failed, err
		outcome.State = Failed
	} else {
		r := result
		update.State, update.Result = Settled, &r
		o.snap.State, o.snap.Result, o.snap.Err = Settled, &r, nil
		outcome.State = Settled
		outcome.Points = r.Series.Len()
	}
	o.publishLocked(update)
	o.mu.Unlock()

	if err != nil {
		o.logger.Warn("fetch cycle failed", "seq", seq, "window", w, "err", err)
	} else {
		o.logger.Info("fetch cycle settled", "seq", seq, "points", outcome.Points, "duration", outcome.Duration)
	}
	o.record(outcome)
}

// fetch issues both requests concurrently and joins them. Either failure
// fails the whole cycle.
func (o *Orchestrator) fetch(ctx context.Context, w domain.Window) (domain.Result, error) {
	result := domain.Result{Window: w}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rctx, cancel := o.requestContext(gctx)
		defer cancel()
		s, err := o.fetcher.FetchSeries(rctx, w)
		if err != nil {
			return err
		}
		result.Series = s
		return nil
	})
	g.Go(func() error {
		rctx, cancel := o.requestContext(gctx)
		defer cancel()
		m, err := o.fetcher.FetchAggregate(rctx, w, domain.AggregateMax)
		if err != nil {
			return err
		}
		result.Maxima = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}

func (o *Orchestrator) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.timeout)
}

// publishLocked never blocks: a full buffer loses its oldest entry.
func (o *Orchestrator) publishLocked(u Update) {
	for {
		select {
		case o.updates <- u:
			return
		default:
		}
		select {
		case dropped := <-o.updates:
			o.logger.Debug("dropping unread update", "seq", dropped.Seq)
		default:
		}
	}
}

func (o *Orchestrator) record(outcome Outcome) {
	if o.recorder == nil {
		return
	}
	if err := o.recorder.Record(context.WithoutCancel(o.ctx), outcome); err != nil {
		o.logger.Warn("failed to record fetch cycle", "seq", outcome.Seq, "err", err)
	}
}
