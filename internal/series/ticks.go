package series

import (
	"fmt"
	"sort"

	"nathanbeddoewebdev/bwdash/internal/domain"
	"nathanbeddoewebdev/bwdash/internal/units"
)

// TickLabeler returns the label for the index-th axis tick placed at
// timestampMillis, or false when the tick should stay blank.
type TickLabeler func(index int, timestampMillis int64) (string, bool)

// DayTicks names the day each tick falls in, taken from the last
// labelled point at or before the tick (ticks before the data take the
// first label). A tick repeating the previous tick's day stays blank, so
// each day is named at most once along the axis. points must come from
// Merge with LabelDays. The returned labeler belongs to a single render.
func DayTicks(points []domain.ChartPoint) TickLabeler {
	var labelled []domain.ChartPoint
	for _, p := range points {
		if p.Label != "" {
			labelled = append(labelled, p)
		}
	}

	days := make(map[int]string)
	return func(index int, ts int64) (string, bool) {
		if len(labelled) == 0 {
			return "", false
		}
		i := sort.Search(len(labelled), func(i int) bool { return labelled[i].Timestamp > ts })
		label := labelled[max(i-1, 0)].Label
		days[index] = label

		if prev, ok := days[index-1]; ok && prev == label {
			return "", false
		}
		return label, true
	}
}

// PlainTicks labels every tick with its day. Spacing is left to the chart.
func PlainTicks() TickLabeler {
	return func(_ int, ts int64) (string, bool) {
		return units.FormatDayLabel(ts), true
	}
}

// TicksFor returns the labeler that matches how points were merged.
func TicksFor(mode LabelMode, points []domain.ChartPoint) TickLabeler {
	if mode == LabelDays {
		return DayTicks(points)
	}
	return PlainTicks()
}

// YTickLabel renders a rate axis tick. The first tick is a bare number and
// later ticks carry the unit.
func YTickLabel(index int, gbps float64) string {
	if index == 0 {
		return fmt.Sprintf("%.0f", gbps)
	}
	return fmt.Sprintf("%.0f Gbps", gbps)
}
