package domain

import "time"

// Window is the requested time range. A zero time.Time endpoint means the
// endpoint has not been chosen yet.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Defined reports whether both endpoints are set.
func (w Window) Defined() bool {
	return !w.From.IsZero() && !w.To.IsZero()
}

// Valid reports whether both endpoints are set and From is strictly before To.
func (w Window) Valid() bool {
	return w.Defined() && w.From.Before(w.To)
}

// Millis returns both endpoints as epoch milliseconds.
func (w Window) Millis() (from, to int64) {
	return w.From.UnixMilli(), w.To.UnixMilli()
}

// Equal reports whether both windows cover the same instants.
func (w Window) Equal(other Window) bool {
	return w.From.Equal(other.From) && w.To.Equal(other.To)
}

// String renders the window for logs and status lines.
func (w Window) String() string {
	const layout = "2006-01-02 15:04"
	from, to := "unset", "unset"
	if !w.From.IsZero() {
		from = w.From.Local().Format(layout)
	}
	if !w.To.IsZero() {
		to = w.To.Local().Format(layout)
	}
	return from + " → " + to
}
