package analytics

import (
	"fmt"
	"time"
)

// StreakResult is the output of CalculateStreakAndAverage.
type StreakResult struct {
	Streak       int            `json:"streak"`
	DailyAverage string         `json:"dailyAverage"`
	DailyCounts  map[string]int `json:"dailyCounts"`
}

// CalculateStreakAndAverage buckets completions by local day, then
// derives the current consecutive-day streak and the 30-day daily
// average. now anchors every date comparison so one evaluation pass is
// internally consistent.
//
// The streak walks backward from today's local midnight. A day with no
// activity yet gets one day of grace: if today is empty but yesterday
// is not, the walk restarts from yesterday. If both are empty the
// streak is 0.
func CalculateStreakAndAverage(records []TaskRecord, now time.Time) StreakResult {
	dailyCounts := make(map[string]int)
	for _, r := range records {
		if r.EditTime > 0 {
			dailyCounts[LocalDateKey(r.EditTime)]++
		}
	}

	today := midnight(now)

	streak := 0
	day := today
	for dailyCounts[DateKey(day)] > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	if streak == 0 {
		yesterday := today.AddDate(0, 0, -1)
		if dailyCounts[DateKey(yesterday)] > 0 {
			streak = 1
			for day = yesterday.AddDate(0, 0, -1); dailyCounts[DateKey(day)] > 0; day = day.AddDate(0, 0, -1) {
				streak++
			}
		}
	}

	// Average over the trailing 30 days inclusive of today. The
	// denominator is a fixed 30, not the active-day count.
	totalTasks := 0
	activeDays := 0
	for i := 29; i >= 0; i-- {
		count := dailyCounts[DateKey(today.AddDate(0, 0, -i))]
		totalTasks += count
		if count > 0 {
			activeDays++
		}
	}

	dailyAverage := "0.0"
	if activeDays > 0 {
		dailyAverage = fmt.Sprintf("%.1f", float64(totalTasks)/30)
	}

	return StreakResult{Streak: streak, DailyAverage: dailyAverage, DailyCounts: dailyCounts}
}

func midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
