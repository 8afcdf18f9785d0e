package bandwidth

import (
	"fmt"
	"strings"
	"time"

	"nathanbeddoewebdev/bwdash/internal/daterange"
	"nathanbeddoewebdev/bwdash/internal/domain"

	"github.com/spf13/cobra"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Window start (YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339)")
	cmd.Flags().String("to", "", "Window end (default now)")
	cmd.Flags().Int("days", 0, "Trailing window length in days when --from is not given (default from config)")
}

// parseDate reads a date in local time unless it carries its own offset.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339)", s)
}

// resolveWindow builds the requested window from --from/--to/--days. The
// retention bounds are advisory and not enforced here; an inverted window
// is rejected with domain.ErrInvalidWindow.
func resolveWindow(cmd *cobra.Command, now time.Time, defaultDays int) (domain.Window, error) {
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	days, _ := cmd.Flags().GetInt("days")
	if days < 0 {
		return domain.Window{}, fmt.Errorf("--days must be positive")
	}
	if days == 0 {
		days = defaultDays
	}

	w := domain.Window{To: now}
	if toRaw != "" {
		t, err := parseDate(toRaw)
		if err != nil {
			return domain.Window{}, fmt.Errorf("--to: %w", err)
		}
		w.To = t
	}

	if fromRaw != "" {
		t, err := parseDate(fromRaw)
		if err != nil {
			return domain.Window{}, fmt.Errorf("--from: %w", err)
		}
		w.From = t
	} else {
		w.From = daterange.ShiftDate(w.To, -days)
	}

	if !w.Valid() {
		return domain.Window{}, fmt.Errorf("window %s: %w", w, domain.ErrInvalidWindow)
	}
	return w, nil
}
