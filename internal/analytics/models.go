package analytics

// TaskRecord is one task-bearing block as supplied by the ingestion
// layer. CreateTime and EditTime are epoch milliseconds; zero means
// the host never recorded the timestamp. EditTime doubles as the
// completion time for DONE tasks.
type TaskRecord struct {
	UID        string
	Content    string
	CreateTime int64
	EditTime   int64
	PageTitle  string
	Order      int
}

// NameCount is one row of a tag or page frequency table.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TaskDuration records how long one task took from creation to
// completion, in hours.
type TaskDuration struct {
	Content  string  `json:"content"`
	Duration float64 `json:"duration"`
	UID      string  `json:"uid"`
}

// Analytics is the derived aggregate bundle. It is built from scratch
// on every refresh and never mutated afterwards.
type Analytics struct {
	TotalCompleted int `json:"totalCompleted"`

	DailyCounts  map[string]int `json:"dailyCounts"`
	WeeklyTrend  map[string]int `json:"weeklyTrend"`
	MonthlyTrend map[string]int `json:"monthlyTrend"`

	HourDistribution    [24]int `json:"hourDistribution"`
	WeekdayDistribution [7]int  `json:"weekdayDistribution"` // 0 = Sunday

	// Frequency tables, truncated to the top 10 entries by descending
	// count. Ties keep first-encounter order.
	Tags  []NameCount `json:"tags"`
	Pages []NameCount `json:"pages"`

	TaskDurations []TaskDuration `json:"taskDurations"`
	LongestTask   *TaskDuration  `json:"longestTask"`
	ShortestTask  *TaskDuration  `json:"shortestTask"`
	AvgTaskLength float64        `json:"avgTaskLength"`

	// nil means no record had both timestamps, which callers must
	// distinguish from an instant completion.
	AvgVelocityHours    *float64 `json:"avgVelocityHours"`
	MedianVelocityHours *float64 `json:"medianVelocityHours"`

	Streak       int    `json:"streak"`
	DailyAverage string `json:"dailyAverage"`

	// TotalTodos is the open-task count supplied by the ingestion
	// layer, not derived here.
	TotalTodos int `json:"totalTodos"`
}
