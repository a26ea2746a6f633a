package analytics

import (
	"fmt"
	"time"
)

// DateKey renders t as a calendar-day key ("2006-01-02") in the local
// timezone. Every daily bucket in the engine is keyed this way.
func DateKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// LocalDateKey is DateKey over an epoch-millisecond timestamp.
func LocalDateKey(ms int64) string {
	return DateKey(time.UnixMilli(ms))
}

// ISOWeekKey renders the ISO-8601 week of ms as "2024-W05". The year is
// the ISO week-year, so late-December days can land in week 1 of the
// following year and early-January days in week 52/53 of the previous.
func ISOWeekKey(ms int64) string {
	y, w := time.UnixMilli(ms).Local().ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// MonthKey renders the calendar month of ms as "2006-01".
func MonthKey(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01")
}
