package analytics

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// testNow is the fixed reference time for every time-relative test:
// Saturday 2025-03-15 14:30 local.
var testNow = time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)

// msAt returns the epoch milliseconds of a local clock reading.
func msAt(year int, month time.Month, day, hour, min int) int64 {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local).UnixMilli()
}

// daysAgo returns a timestamp at noon n days before testNow.
func daysAgo(n int) int64 {
	d := testNow.AddDate(0, 0, -n)
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.Local).UnixMilli()
}

// completed builds a record finished at editTime with no create time.
func completed(uid string, editTime int64) TaskRecord {
	return TaskRecord{UID: uid, Content: "task " + uid, EditTime: editTime, PageTitle: "Untitled"}
}

// timed builds a record with both timestamps, durationHours apart.
func timed(uid string, createTime int64, durationHours float64) TaskRecord {
	return TaskRecord{
		UID:        uid,
		Content:    "task " + uid,
		CreateTime: createTime,
		EditTime:   createTime + int64(durationHours*3600*1000),
		PageTitle:  "Untitled",
	}
}

// ============================================================
// Date keys
// ============================================================

func TestLocalDateKey(t *testing.T) {
	ms := msAt(2025, 3, 5, 9, 0)
	if got := LocalDateKey(ms); got != "2025-03-05" {
		t.Fatalf("LocalDateKey = %q, want 2025-03-05", got)
	}
}

func TestDateKeyZeroPadded(t *testing.T) {
	if got := DateKey(time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local)); got != "2025-01-02" {
		t.Fatalf("DateKey = %q, want 2025-01-02", got)
	}
}

func TestISOWeekKey(t *testing.T) {
	if got := ISOWeekKey(msAt(2025, 3, 5, 12, 0)); got != "2025-W10" {
		t.Fatalf("ISOWeekKey = %q, want 2025-W10", got)
	}
}

func TestISOWeekKeyYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday belonging to ISO week 1 of 2025.
	if got := ISOWeekKey(msAt(2024, 12, 30, 12, 0)); got != "2025-W01" {
		t.Fatalf("late December: got %q, want 2025-W01", got)
	}
	// 2021-01-01 is a Friday belonging to ISO week 53 of 2020.
	if got := ISOWeekKey(msAt(2021, 1, 1, 12, 0)); got != "2020-W53" {
		t.Fatalf("early January: got %q, want 2020-W53", got)
	}
}

func TestMonthKey(t *testing.T) {
	if got := MonthKey(msAt(2025, 3, 5, 12, 0)); got != "2025-03" {
		t.Fatalf("MonthKey = %q, want 2025-03", got)
	}
}

// ============================================================
// Text extraction
// ============================================================

func TestExtractHashtags(t *testing.T) {
	got := ExtractHashtags("Fix #bug in #api, then #bug again")
	want := []string{"bug", "api", "bug"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractHashtags = %v, want %v", got, want)
	}
}

func TestExtractHashtagsNone(t *testing.T) {
	if got := ExtractHashtags("no tags here"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestExtractPageLinks(t *testing.T) {
	got := ExtractPageLinks("see [[Page One]] and [[Page Two]]")
	want := []string{"Page One", "Page Two"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ExtractPageLinks = %v, want %v", got, want)
	}
}

func TestExtractIgnoresStatusMacros(t *testing.T) {
	content := "Write #report for [[Project X]] {{[[DONE]]}}"
	tags := ExtractHashtags(content)
	if !reflect.DeepEqual(tags, []string{"report"}) {
		t.Fatalf("tags = %v, want [report]", tags)
	}
	links := ExtractPageLinks(content)
	if !reflect.DeepEqual(links, []string{"Project X"}) {
		t.Fatalf("links = %v, want [Project X]", links)
	}
}

// ============================================================
// Streak and daily average
// ============================================================

func TestStreakFiveConsecutiveDays(t *testing.T) {
	var records []TaskRecord
	for i := 0; i < 5; i++ {
		records = append(records, completed("r", daysAgo(i)))
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 5 {
		t.Fatalf("streak = %d, want 5", sr.Streak)
	}
}

func TestStreakGraceYesterdayOnly(t *testing.T) {
	records := []TaskRecord{
		completed("a", daysAgo(1)),
		completed("b", daysAgo(1)),
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 1 {
		t.Fatalf("streak = %d, want 1 (one-day grace)", sr.Streak)
	}
}

func TestStreakGraceContinuesBackward(t *testing.T) {
	// Nothing today, but three straight days ending yesterday.
	records := []TaskRecord{
		completed("a", daysAgo(1)),
		completed("b", daysAgo(2)),
		completed("c", daysAgo(3)),
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 3 {
		t.Fatalf("streak = %d, want 3", sr.Streak)
	}
}

func TestStreakEmpty(t *testing.T) {
	sr := CalculateStreakAndAverage(nil, testNow)
	if sr.Streak != 0 {
		t.Fatalf("streak = %d, want 0", sr.Streak)
	}
	if sr.DailyAverage != "0.0" {
		t.Fatalf("dailyAverage = %q, want 0.0", sr.DailyAverage)
	}
}

func TestStreakBrokenByGap(t *testing.T) {
	records := []TaskRecord{
		completed("a", daysAgo(0)),
		completed("b", daysAgo(2)), // gap at daysAgo(1)
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 1 {
		t.Fatalf("streak = %d, want 1", sr.Streak)
	}
}

func TestStreakTwoDayGapGetsNoGrace(t *testing.T) {
	records := []TaskRecord{completed("a", daysAgo(2))}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 0 {
		t.Fatalf("streak = %d, want 0", sr.Streak)
	}
}

func TestDailyAverageFixedDenominator(t *testing.T) {
	// 3 tasks on 3 active days still divides by 30, not 3.
	records := []TaskRecord{
		completed("a", daysAgo(0)),
		completed("b", daysAgo(1)),
		completed("c", daysAgo(2)),
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.DailyAverage != "0.1" {
		t.Fatalf("dailyAverage = %q, want 0.1", sr.DailyAverage)
	}
}

func TestDailyAverageExcludesOldDays(t *testing.T) {
	records := []TaskRecord{
		completed("a", daysAgo(0)),
		completed("old", daysAgo(45)), // outside the 30-day window
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.DailyAverage != "0.0" {
		// 1/30 rounds to 0.0
		t.Fatalf("dailyAverage = %q, want 0.0", sr.DailyAverage)
	}
	if sr.DailyCounts[LocalDateKey(daysAgo(45))] != 1 {
		t.Fatal("old day should still appear in dailyCounts")
	}
}

func TestStreakIgnoresMissingEditTime(t *testing.T) {
	records := []TaskRecord{
		{UID: "a", Content: "no timestamp"},
		{UID: "b", Content: "negative", EditTime: -5},
	}
	sr := CalculateStreakAndAverage(records, testNow)
	if sr.Streak != 0 || len(sr.DailyCounts) != 0 {
		t.Fatalf("records without editTime should not bucket: %+v", sr)
	}
}

// ============================================================
// Velocity
// ============================================================

func TestVelocityAvgAndMedian(t *testing.T) {
	base := daysAgo(3)
	records := []TaskRecord{
		timed("a", base, 1),
		timed("b", base, 2),
		timed("c", base, 3),
	}
	v := CalculateTaskVelocity(records)
	if v.AvgVelocityHours == nil || *v.AvgVelocityHours != 2 {
		t.Fatalf("avg = %v, want 2", v.AvgVelocityHours)
	}
	if v.MedianVelocityHours == nil || *v.MedianVelocityHours != 2 {
		t.Fatalf("median = %v, want 2", v.MedianVelocityHours)
	}
}

func TestVelocityUpperMedianForEvenCount(t *testing.T) {
	base := daysAgo(3)
	records := []TaskRecord{
		timed("a", base, 1),
		timed("b", base, 2),
		timed("c", base, 3),
		timed("d", base, 4),
	}
	v := CalculateTaskVelocity(records)
	if v.MedianVelocityHours == nil || *v.MedianVelocityHours != 3 {
		t.Fatalf("median = %v, want 3 (element at n/2)", v.MedianVelocityHours)
	}
}

func TestVelocityNilWhenNoData(t *testing.T) {
	records := []TaskRecord{
		completed("a", daysAgo(0)),                    // no createTime
		{UID: "b", Content: "x", CreateTime: daysAgo(1)}, // no editTime
	}
	v := CalculateTaskVelocity(records)
	if v.AvgVelocityHours != nil || v.MedianVelocityHours != nil {
		t.Fatalf("expected nil metrics, got %+v", v)
	}
}

func TestVelocityDropsOutliers(t *testing.T) {
	base := daysAgo(60)
	records := []TaskRecord{
		timed("ok", base, 720),       // exactly 30 days, kept
		timed("stale", base, 721),    // dropped
		{UID: "neg", CreateTime: base, EditTime: base - 1000}, // negative, dropped
	}
	v := CalculateTaskVelocity(records)
	if v.AvgVelocityHours == nil || *v.AvgVelocityHours != 720 {
		t.Fatalf("avg = %v, want 720", v.AvgVelocityHours)
	}
}

// ============================================================
// Aggregation
// ============================================================

func TestGenerateDistributions(t *testing.T) {
	// Wednesday 2025-03-05, 09:15 local.
	ms := msAt(2025, 3, 5, 9, 15)
	a := Generate([]TaskRecord{completed("a", ms)})

	if a.TotalCompleted != 1 {
		t.Fatalf("totalCompleted = %d, want 1", a.TotalCompleted)
	}
	if a.DailyCounts["2025-03-05"] != 1 {
		t.Fatalf("dailyCounts = %v", a.DailyCounts)
	}
	if a.WeeklyTrend["2025-W10"] != 1 {
		t.Fatalf("weeklyTrend = %v", a.WeeklyTrend)
	}
	if a.MonthlyTrend["2025-03"] != 1 {
		t.Fatalf("monthlyTrend = %v", a.MonthlyTrend)
	}
	if a.HourDistribution[9] != 1 {
		t.Fatalf("hourDistribution = %v", a.HourDistribution)
	}
	if a.WeekdayDistribution[3] != 1 { // Wednesday
		t.Fatalf("weekdayDistribution = %v", a.WeekdayDistribution)
	}
}

func TestGenerateCountsTagsAndPages(t *testing.T) {
	records := []TaskRecord{
		{UID: "a", Content: "fix #api for [[Roadmap]]", PageTitle: "Inbox"},
		{UID: "b", Content: "ship #api #release", PageTitle: "Inbox"},
	}
	a := Generate(records)

	if len(a.Tags) != 2 || a.Tags[0].Name != "api" || a.Tags[0].Count != 2 {
		t.Fatalf("tags = %+v", a.Tags)
	}
	// Page links and origin pages share one table: Inbox twice, Roadmap once.
	pages := map[string]int{}
	for _, p := range a.Pages {
		pages[p.Name] = p.Count
	}
	if pages["Inbox"] != 2 || pages["Roadmap"] != 1 {
		t.Fatalf("pages = %+v", a.Pages)
	}
}

func TestGenerateTopTenTruncation(t *testing.T) {
	var records []TaskRecord
	for i := 0; i < 15; i++ {
		content := ""
		// tag0 appears 15 times, tag1 14 times, ... tag14 once.
		for j := 0; j <= i; j++ {
			content += "#tag" + string(rune('a'+j)) + " "
		}
		records = append(records, TaskRecord{UID: "r", Content: content})
	}
	a := Generate(records)
	if len(a.Tags) != 10 {
		t.Fatalf("tags length = %d, want 10", len(a.Tags))
	}
	for i := 1; i < len(a.Tags); i++ {
		if a.Tags[i].Count > a.Tags[i-1].Count {
			t.Fatalf("tags not sorted by descending count: %+v", a.Tags)
		}
	}
	if a.Tags[0].Count != 15 {
		t.Fatalf("highest tag count = %d, want 15", a.Tags[0].Count)
	}
}

func TestGenerateTieBreakKeepsFirstSeen(t *testing.T) {
	records := []TaskRecord{
		{UID: "a", Content: "#zebra #apple"},
		{UID: "b", Content: "#zebra #apple"},
	}
	a := Generate(records)
	if a.Tags[0].Name != "zebra" || a.Tags[1].Name != "apple" {
		t.Fatalf("equal counts should keep first-seen order: %+v", a.Tags)
	}
}

func TestGenerateDurations(t *testing.T) {
	base := daysAgo(5)
	records := []TaskRecord{
		timed("short", base, 1),
		timed("long", base, 10),
		completed("untimed", daysAgo(1)),
	}
	a := Generate(records)

	if len(a.TaskDurations) != 2 {
		t.Fatalf("taskDurations length = %d, want 2", len(a.TaskDurations))
	}
	if a.LongestTask == nil || a.LongestTask.UID != "long" {
		t.Fatalf("longestTask = %+v", a.LongestTask)
	}
	if a.ShortestTask == nil || a.ShortestTask.UID != "short" {
		t.Fatalf("shortestTask = %+v", a.ShortestTask)
	}
	if a.AvgTaskLength != 5.5 {
		t.Fatalf("avgTaskLength = %v, want 5.5", a.AvgTaskLength)
	}
	if a.AvgVelocityHours == nil || *a.AvgVelocityHours != 5.5 {
		t.Fatalf("avgVelocityHours = %v, want 5.5", a.AvgVelocityHours)
	}
}

func TestGenerateTruncatesDurationContent(t *testing.T) {
	long := strings.Repeat("ü", 150)
	r := timed("big", daysAgo(2), 2)
	r.Content = long
	a := Generate([]TaskRecord{r})

	got := a.TaskDurations[0].Content
	if len([]rune(got)) != 100 {
		t.Fatalf("duration content rune length = %d, want 100", len([]rune(got)))
	}
	// Extremes keep the full content.
	if a.LongestTask.Content != long {
		t.Fatal("longestTask content should not be truncated")
	}
}

func TestGenerateEmpty(t *testing.T) {
	a := Generate(nil)
	if a.TotalCompleted != 0 || a.AvgTaskLength != 0 {
		t.Fatalf("unexpected aggregates: %+v", a)
	}
	if a.AvgVelocityHours != nil {
		t.Fatal("velocity should be nil for empty input")
	}
	if a.LongestTask != nil || a.ShortestTask != nil {
		t.Fatal("extremes should be nil for empty input")
	}
}

func TestComputeMergesStreak(t *testing.T) {
	records := []TaskRecord{
		completed("a", daysAgo(0)),
		completed("b", daysAgo(1)),
	}
	a := Compute(records, testNow)
	if a.Streak != 2 {
		t.Fatalf("streak = %d, want 2", a.Streak)
	}
	if a.DailyAverage != "0.1" {
		t.Fatalf("dailyAverage = %q, want 0.1", a.DailyAverage)
	}
}

func TestComputeDeterministic(t *testing.T) {
	records := []TaskRecord{
		{UID: "a", Content: "fix #api [[Roadmap]]", CreateTime: daysAgo(3), EditTime: daysAgo(1), PageTitle: "Inbox"},
		completed("b", daysAgo(0)),
	}
	first := Compute(records, testNow)
	second := Compute(records, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated computation should be identical")
	}
}

// ============================================================
// Productivity score
// ============================================================

func TestScoreZeroForEmptyAnalytics(t *testing.T) {
	a := Compute(nil, testNow)
	b := CalculateProductivityScore(a, testNow)
	if b.Total != 0 {
		t.Fatalf("total = %d, want 0", b.Total)
	}
	if b.Components.Velocity.Value != "N/A" {
		t.Fatalf("velocity value = %q, want N/A", b.Components.Velocity.Value)
	}
}

func TestScoreComponentsCapped(t *testing.T) {
	vel := 1.0
	a := &Analytics{
		Streak:       50,    // caps at 30
		DailyAverage: "9.9", // caps at 30
		DailyCounts:  map[string]int{},
		AvgVelocityHours: &vel,
	}
	for i := 0; i < 30; i++ {
		a.DailyCounts[DateKey(testNow.AddDate(0, 0, -i))] = 1
	}
	b := CalculateProductivityScore(a, testNow)

	if b.Components.Streak.Score != 30 || b.Components.Streak.Percentage != 100 {
		t.Fatalf("streak component = %+v", b.Components.Streak)
	}
	if b.Components.DailyAverage.Score != 30 {
		t.Fatalf("dailyAverage component = %+v", b.Components.DailyAverage)
	}
	if b.Components.Consistency.Score != 20 {
		t.Fatalf("consistency component = %+v", b.Components.Consistency)
	}
	// 20 - 1/2.4 rounds to 20, total rounds to 100.
	if b.Total != 100 {
		t.Fatalf("total = %d, want 100", b.Total)
	}
	if b.Components.Velocity.Value != "1.0h" {
		t.Fatalf("velocity value = %q, want 1.0h", b.Components.Velocity.Value)
	}
}

func TestScoreSlowVelocityGetsZero(t *testing.T) {
	vel := 48.0
	a := &Analytics{DailyAverage: "0.0", DailyCounts: map[string]int{}, AvgVelocityHours: &vel}
	b := CalculateProductivityScore(a, testNow)
	if b.Components.Velocity.Score != 0 {
		t.Fatalf("velocity at 48h should score 0, got %d", b.Components.Velocity.Score)
	}
}

func TestScoreBoundsProperty(t *testing.T) {
	inputs := []*Analytics{
		Compute(nil, testNow),
		{Streak: 1000, DailyAverage: "99.9", DailyCounts: map[string]int{}},
		{DailyAverage: "0.0", DailyCounts: map[string]int{"bogus-key": 3}},
	}
	for i, a := range inputs {
		b := CalculateProductivityScore(a, testNow)
		if b.Total < 0 || b.Total > 100 {
			t.Fatalf("input %d: total %d out of [0,100]", i, b.Total)
		}
	}
}

// ============================================================
// Leveling
// ============================================================

func TestLevelZeroCompleted(t *testing.T) {
	lp := CalculateLevelAndXP(0)
	if lp.Level != 1 || lp.XP != 0 || lp.XPRequired != 10 || lp.XPProgress != 0 {
		t.Fatalf("unexpected progress: %+v", lp)
	}
}

func TestLevelBoundaries(t *testing.T) {
	if lp := CalculateLevelAndXP(9); lp.Level != 1 || lp.XP != 9 || lp.XPProgress != 90 {
		t.Fatalf("9 tasks: %+v", lp)
	}
	// 10 tasks exactly fills level 1; level 2 costs floor(10*1.2) = 12.
	if lp := CalculateLevelAndXP(10); lp.Level != 2 || lp.XP != 0 || lp.XPRequired != 12 {
		t.Fatalf("10 tasks: %+v", lp)
	}
	if lp := CalculateLevelAndXP(22); lp.Level != 3 || lp.XP != 0 || lp.XPRequired != 14 {
		t.Fatalf("22 tasks: %+v", lp)
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 5000; n += 7 {
		lp := CalculateLevelAndXP(n)
		if lp.Level < prev {
			t.Fatalf("level decreased at n=%d: %d -> %d", n, prev, lp.Level)
		}
		if lp.XP < 0 || lp.XP >= lp.XPRequired+1 {
			t.Fatalf("xp out of range at n=%d: %+v", n, lp)
		}
		prev = lp.Level
	}
}

// ============================================================
// Achievements
// ============================================================

func TestAchievementPartitionComplete(t *testing.T) {
	a := Compute(nil, testNow)
	set := CalculateAchievements(a, testNow)

	if len(set.All) != len(achievementCatalog) {
		t.Fatalf("all = %d entries, want %d", len(set.All), len(achievementCatalog))
	}
	if len(set.Achieved)+len(set.Unachieved) != len(set.All) {
		t.Fatalf("partition mismatch: %d + %d != %d",
			len(set.Achieved), len(set.Unachieved), len(set.All))
	}
	seen := map[string]bool{}
	for _, e := range set.All {
		if seen[e.ID] {
			t.Fatalf("duplicate achievement id %q", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestAchievementFirstTask(t *testing.T) {
	a := Compute([]TaskRecord{completed("a", daysAgo(0))}, testNow)
	set := CalculateAchievements(a, testNow)

	want := map[string]bool{"firsttask": true, "total1": true}
	for _, e := range set.Achieved {
		delete(want, e.ID)
	}
	if len(want) != 0 {
		t.Fatalf("missing achievements: %v", want)
	}
}

func TestAchievementStreakThresholds(t *testing.T) {
	var records []TaskRecord
	for i := 0; i < 7; i++ {
		records = append(records, completed("r", daysAgo(i)))
	}
	a := Compute(records, testNow)
	set := CalculateAchievements(a, testNow)

	achieved := map[string]bool{}
	for _, e := range set.Achieved {
		achieved[e.ID] = true
	}
	if !achieved["streak3"] || !achieved["streak7"] {
		t.Fatalf("expected streak3 and streak7, achieved = %v", achieved)
	}
	if achieved["streak14"] {
		t.Fatal("streak14 should not be achieved at 7 days")
	}
}

func TestAchievementPerfectWeek(t *testing.T) {
	var records []TaskRecord
	for day := 0; day < 7; day++ {
		for n := 0; n < 5; n++ {
			records = append(records, completed("r", daysAgo(day)+int64(n)))
		}
	}
	a := Compute(records, testNow)
	set := CalculateAchievements(a, testNow)

	for _, e := range set.Achieved {
		if e.ID == "perfectweek" {
			return
		}
	}
	t.Fatal("perfectweek should be achieved with 5 tasks on each of 7 days")
}

func TestAchievementExactDailyCounts(t *testing.T) {
	var records []TaskRecord
	for n := 0; n < 42; n++ {
		records = append(records, completed("r", daysAgo(1)+int64(n*1000)))
	}
	a := Compute(records, testNow)
	set := CalculateAchievements(a, testNow)

	achieved := map[string]bool{}
	for _, e := range set.Achieved {
		achieved[e.ID] = true
	}
	if !achieved["answer"] {
		t.Fatal("exactly 42 tasks in a day should unlock answer")
	}
	if achieved["lucky7"] || achieved["binary"] {
		t.Fatal("42 is neither lucky nor binary")
	}
}

func TestAchievementSprinterNeverUnlocks(t *testing.T) {
	var records []TaskRecord
	base := daysAgo(0)
	for n := 0; n < 20; n++ {
		records = append(records, timed("r", base, 0.05))
	}
	a := Compute(records, testNow)
	set := CalculateAchievements(a, testNow)

	for _, e := range set.Achieved {
		if e.ID == "sprinter" {
			t.Fatal("sprinter must stay unachieved")
		}
	}
}

func TestAchievementTagCountSeesTruncatedTable(t *testing.T) {
	// 30 distinct tags collapse to a top-10 table before evaluation,
	// so tags25 cannot unlock even though 30 tags were used.
	var records []TaskRecord
	for i := 0; i < 30; i++ {
		records = append(records, TaskRecord{UID: "r", Content: "#tag" + string(rune('a'+i%26)) + string(rune('a'+i/26))})
	}
	a := Compute(records, testNow)
	set := CalculateAchievements(a, testNow)

	achieved := map[string]bool{}
	for _, e := range set.Achieved {
		achieved[e.ID] = true
	}
	if !achieved["tags5"] || !achieved["tags10"] {
		t.Fatalf("tags5/tags10 should unlock, achieved = %v", achieved)
	}
	if achieved["tags25"] {
		t.Fatal("tags25 cannot unlock against the truncated table")
	}
}

// ============================================================
// Fuzzy matching
// ============================================================

func TestFuzzyScoreRanks(t *testing.T) {
	if got := FuzzyScore("todo analysis", "Todo Analysis"); got != 1000 {
		t.Fatalf("exact match = %d, want 1000", got)
	}
	if got := FuzzyScore("analysis", "Todo Analysis"); got != 500 {
		t.Fatalf("substring = %d, want 500", got)
	}
	if got := FuzzyScore("tda", "Todo Analysis"); got <= 0 {
		t.Fatalf("subsequence = %d, want positive", got)
	}
	if got := FuzzyScore("xyz", "Todo Analysis"); got != 0 {
		t.Fatalf("no match = %d, want 0", got)
	}
}

func TestFuzzyScoreConsecutiveBonus(t *testing.T) {
	// Same characters matched, but an unbroken run earns the bonus.
	scattered := FuzzyScore("abcq", "a_b_c_zz_q")
	run := FuzzyScore("abcq", "xabczz_q")
	if scattered != 40 {
		t.Fatalf("scattered = %d, want 40 (no bonus)", scattered)
	}
	if run <= scattered {
		t.Fatalf("consecutive run (%d) should outscore scattered (%d)", run, scattered)
	}
}

func TestFuzzyScoreEmpty(t *testing.T) {
	if FuzzyScore("", "text") != 0 || FuzzyScore("query", "") != 0 {
		t.Fatal("empty query or text should score 0")
	}
}

func TestFuzzyMatch(t *testing.T) {
	cases := []struct {
		query, text string
		want        bool
	}{
		{"tda", "Todo Analysis", true},
		{"TODO", "my todo list", true},
		{"xyz", "Todo Analysis", false},
		{"", "anything", false},
	}
	for _, c := range cases {
		if got := FuzzyMatch(c.query, c.text); got != c.want {
			t.Fatalf("FuzzyMatch(%q, %q) = %v, want %v", c.query, c.text, got, c.want)
		}
	}
}
