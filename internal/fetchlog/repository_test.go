package fetchlog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/orchestrator"

	"github.com/google/go-cmp/cmp"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bwdash.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &Entry{Seq: 1, Outcome: OutcomeSettled, DurationMs: 12}
	if err := r.Save(context.Background(), entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestSave_RoundTripsFields(t *testing.T) {
	r := tempRepo(t)

	from := time.UnixMilli(1_712_000_000_000)
	saved := &Entry{
		Timestamp:  time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC),
		Seq:        42,
		From:       from,
		To:         from.Add(24 * time.Hour),
		Outcome:    OutcomeFailed,
		Detail:     "backend unavailable",
		Points:     288,
		DurationMs: 150,
	}
	if err := r.Save(context.Background(), saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := r.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	got := entries[0]
	if got.Seq != 42 || got.Outcome != OutcomeFailed || got.Detail != saved.Detail || got.Points != 288 || got.DurationMs != 150 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if !got.From.Equal(saved.From) || !got.To.Equal(saved.To) || !got.Timestamp.Equal(saved.Timestamp) {
		t.Errorf("times did not round-trip: %+v", got)
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &Entry{
			Seq:       uint64(i + 1),
			Outcome:   OutcomeSettled,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(context.Background(), entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListByOutcome(t *testing.T) {
	r := tempRepo(t)

	for i, outcome := range []string{OutcomeSettled, OutcomeStale, OutcomeSettled, OutcomeFailed} {
		entry := &Entry{Seq: uint64(i + 1), Outcome: outcome}
		if err := r.Save(context.Background(), entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.ListByOutcome(OutcomeSettled, 10)
	if err != nil {
		t.Fatalf("ListByOutcome failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.Outcome != OutcomeSettled {
			t.Errorf("expected outcome settled, got %q", entry.Outcome)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	old := &Entry{Seq: 1, Outcome: OutcomeSettled, Timestamp: time.Now().UTC().Add(-48 * time.Hour)}
	recent := &Entry{Seq: 2, Outcome: OutcomeSettled, Timestamp: time.Now().UTC().Add(-1 * time.Hour)}
	for _, e := range []*Entry{old, recent} {
		if err := r.Save(context.Background(), e); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Seq != 2 {
		t.Fatalf("unexpected remaining entries: %+v", remaining)
	}
}

func TestList_OrdersWithinOneSecond(t *testing.T) {
	r := tempRepo(t)

	second := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 500 * time.Millisecond, 20 * time.Millisecond} {
		entry := &Entry{Seq: uint64(i + 1), Outcome: OutcomeSettled, Timestamp: second.Add(offset)}
		if err := r.Save(context.Background(), entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var got []uint64
	for _, e := range entries {
		got = append(got, e.Seq)
	}
	if diff := cmp.Diff([]uint64{2, 3, 1}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if !entries[2].Timestamp.Equal(second) {
		t.Errorf("whole-second timestamp = %v, want %v", entries[2].Timestamp, second)
	}
}

func TestPrune_CutoffWithinOneSecond(t *testing.T) {
	second := time.Date(2024, 4, 2, 10, 0, 0, 0, time.UTC)
	now = func() time.Time { return second.Add(time.Hour + 700*time.Millisecond) }
	t.Cleanup(func() { now = time.Now })

	r := tempRepo(t)
	for i, offset := range []time.Duration{0, 500 * time.Millisecond, 900 * time.Millisecond} {
		entry := &Entry{Seq: uint64(i + 1), Outcome: OutcomeSettled, Timestamp: second.Add(offset)}
		if err := r.Save(context.Background(), entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	removed, err := r.Prune(time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Seq != 3 {
		t.Fatalf("unexpected remaining entries: %+v", remaining)
	}
}

func TestFromOutcome(t *testing.T) {
	w := domain.Window{From: time.UnixMilli(1000), To: time.UnixMilli(2000)}

	got := FromOutcome(orchestrator.Outcome{
		Seq:      7,
		Window:   w,
		State:    orchestrator.Failed,
		Err:      errors.New("boom"),
		Duration: 1500 * time.Millisecond,
	})

	want := Entry{Seq: 7, From: w.From, To: w.To, Outcome: OutcomeFailed, Detail: "boom", DurationMs: 1500}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestRecorder_PersistsOutcomes(t *testing.T) {
	r := tempRepo(t)
	rec := Recorder{Repo: r}

	var _ orchestrator.Recorder = rec

	w := domain.Window{From: time.UnixMilli(1000), To: time.UnixMilli(2000)}
	for seq, state := range []orchestrator.State{orchestrator.Stale, orchestrator.Settled} {
		o := orchestrator.Outcome{Seq: uint64(seq + 1), Window: w, State: state, Points: 3}
		if err := rec.Record(context.Background(), o); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	stale, err := r.ListByOutcome(OutcomeStale, 10)
	if err != nil {
		t.Fatalf("ListByOutcome failed: %v", err)
	}
	if len(stale) != 1 || stale[0].Seq != 1 {
		t.Errorf("unexpected stale entries: %+v", stale)
	}
}
