// Package daterange implements the calendar arithmetic behind the
// date-range picker: day shifts, the default trailing window and the
// advisory bounds that disable out-of-range choices.
package daterange

import (
	"time"

	"nathanbeddoewebdev/bwdash/internal/domain"
)

const (
	// RetentionDays is how far back the backend keeps samples.
	RetentionDays = 15

	// DefaultWindowDays is the trailing window shown on startup.
	DefaultWindowDays = 10
)

// ShiftDate returns t moved by deltaDays calendar days. Month and year
// rollover follow time.Time.AddDate; the wall clock is kept in t's own
// location. t is a value, so the caller's copy never changes.
func ShiftDate(t time.Time, deltaDays int) time.Time {
	return t.AddDate(0, 0, deltaDays)
}

// DefaultWindow returns the trailing window ending at now.
func DefaultWindow(now time.Time) domain.Window {
	return TrailingWindow(now, DefaultWindowDays)
}

// TrailingWindow returns [now - days, now].
func TrailingWindow(now time.Time, days int) domain.Window {
	return domain.Window{From: ShiftDate(now, -days), To: now}
}

// Limits holds the selectable range for each endpoint. All bounds are
// inclusive.
type Limits struct {
	FromMin time.Time
	FromMax time.Time
	ToMin   time.Time
	ToMax   time.Time
}

// Bounds computes the selectable range for both endpoints of w at now.
// They are advisory: the orchestrator fetches whatever window it is given.
func Bounds(now time.Time, w domain.Window) Limits {
	l := Limits{
		FromMin: ShiftDate(now, -RetentionDays),
		FromMax: ShiftDate(now, -1),
		ToMin:   ShiftDate(now, -(RetentionDays - 1)),
		ToMax:   now,
	}
	if !w.To.IsZero() {
		l.FromMax = ShiftDate(w.To, -1)
	}
	if !w.From.IsZero() {
		l.ToMin = ShiftDate(w.From, 1)
	}
	return l
}

// AllowsFrom reports whether t is a selectable From endpoint.
func (l Limits) AllowsFrom(t time.Time) bool {
	return within(t, l.FromMin, l.FromMax)
}

// AllowsTo reports whether t is a selectable To endpoint.
func (l Limits) AllowsTo(t time.Time) bool {
	return within(t, l.ToMin, l.ToMax)
}

// Clamp limits t to [min, max]. When min is after max, min wins.
func Clamp(t, min, max time.Time) time.Time {
	if t.After(max) {
		t = max
	}
	if t.Before(min) {
		t = min
	}
	return t
}

func within(t, min, max time.Time) bool {
	return !t.Before(min) && !t.After(max)
}
