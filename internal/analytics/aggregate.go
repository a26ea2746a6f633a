package analytics

import (
	"sort"
	"time"
)

// counter is a frequency table that remembers first-encounter order so
// equal counts sort stably by insertion.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// top returns at most n entries by descending count, ties in
// first-encounter order.
func (c *counter) top(n int) []NameCount {
	entries := make([]NameCount, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, NameCount{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Generate makes the single fan-out pass over records, producing every
// distribution and frequency table except streak, dailyAverage and
// totalTodos, which Compute attaches afterwards.
func Generate(records []TaskRecord) *Analytics {
	a := &Analytics{
		TotalCompleted: len(records),
		DailyCounts:    make(map[string]int),
		WeeklyTrend:    make(map[string]int),
		MonthlyTrend:   make(map[string]int),
	}

	tags := newCounter()
	pages := newCounter()

	for _, r := range records {
		if r.EditTime > 0 {
			t := time.UnixMilli(r.EditTime).Local()
			a.DailyCounts[LocalDateKey(r.EditTime)]++
			a.WeeklyTrend[ISOWeekKey(r.EditTime)]++
			a.MonthlyTrend[MonthKey(r.EditTime)]++
			a.HourDistribution[t.Hour()]++
			a.WeekdayDistribution[int(t.Weekday())]++
		}

		for _, tag := range ExtractHashtags(r.Content) {
			tags.add(tag)
		}
		// Page links and the page of origin share one frequency table.
		for _, page := range ExtractPageLinks(r.Content) {
			pages.add(page)
		}
		if r.PageTitle != "" {
			pages.add(r.PageTitle)
		}

		if h, ok := taskDurationHours(r); ok {
			a.TaskDurations = append(a.TaskDurations, TaskDuration{
				Content:  truncate(r.Content, 100),
				Duration: h,
				UID:      r.UID,
			})
			if a.LongestTask == nil || h > a.LongestTask.Duration {
				a.LongestTask = &TaskDuration{Content: r.Content, Duration: h, UID: r.UID}
			}
			if a.ShortestTask == nil || h < a.ShortestTask.Duration {
				a.ShortestTask = &TaskDuration{Content: r.Content, Duration: h, UID: r.UID}
			}
		}
	}

	if len(a.TaskDurations) > 0 {
		total := 0.0
		for _, d := range a.TaskDurations {
			total += d.Duration
		}
		a.AvgTaskLength = total / float64(len(a.TaskDurations))
	}

	a.Tags = tags.top(10)
	a.Pages = pages.top(10)

	velocity := CalculateTaskVelocity(records)
	a.AvgVelocityHours = velocity.AvgVelocityHours
	a.MedianVelocityHours = velocity.MedianVelocityHours

	return a
}

// Compute is the full derivation pipeline: Generate plus the streak
// and daily-average merge. records must already be filtered to
// completed tasks by the caller.
func Compute(records []TaskRecord, now time.Time) *Analytics {
	a := Generate(records)
	sr := CalculateStreakAndAverage(records, now)
	a.Streak = sr.Streak
	a.DailyAverage = sr.DailyAverage
	return a
}

// truncate cuts s to at most n runes without splitting a character.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
