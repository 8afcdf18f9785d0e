// Package units converts backend bit rates to display units and formats
// rates and timestamps for axes, tooltips and tables.
//
// All calendar formatting uses the local system zone (time.Local). Day
// labels therefore change at local midnight, which is also where label
// de-duplication in the series package draws its day boundaries.
package units

import (
	"fmt"
	"time"
)

// bitsPerGigabit is the scale between bits and gigabits.
const bitsPerGigabit = 1e-9

// ToRate converts bits per second to gigabits per second. No rounding.
func ToRate(bitsPerSecond float64) float64 {
	return bitsPerSecond * bitsPerGigabit
}

// FormatRate renders a Gbps value with exactly two decimals, e.g.
// "12.35 Gbps". Rounding follows strconv on the exact binary value, so
// 1.005 (stored as 1.00499…) renders as "1.00 Gbps". Negative values are
// formatted as-is.
func FormatRate(gbps float64) string {
	return fmt.Sprintf("%.2f Gbps", gbps)
}

// FormatDayLabel renders an epoch-millisecond timestamp as "<day>. <Mon>",
// e.g. "7. Apr", in local time.
func FormatDayLabel(ms int64) string {
	return time.UnixMilli(ms).In(time.Local).Format("2. Jan")
}

// FormatTooltipTime renders a timestamp as "Tue Apr 07 2020 14:30:00" in
// local time.
func FormatTooltipTime(ms int64) string {
	return time.UnixMilli(ms).In(time.Local).Format("Mon Jan 02 2006 15:04:05")
}

// FormatPercent renders a percentage with two decimals, e.g. "42.10 %".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f %%", p)
}
