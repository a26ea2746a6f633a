package analytics

import "time"

// Achievement is one catalog entry with its evaluated requirement.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Requirement bool   `json:"requirement"`
}

// AchievementSet partitions the catalog by requirement. All preserves
// catalog order; every entry appears in exactly one partition.
type AchievementSet struct {
	Achieved   []Achievement `json:"achieved"`
	Unachieved []Achievement `json:"unachieved"`
	All        []Achievement `json:"all"`
}

// achievementStats holds the derived values the catalog predicates
// read. They are computed once per evaluation from the analytics
// snapshot, after its tag/page tables were truncated to the top 10.
type achievementStats struct {
	streak         int
	totalCompleted int
	avgVelocity    *float64
	maxDaily       int
	morningTasks   int
	nightTasks     int
	weekendTasks   int
	tagCount       int
	maxTag         int
	activeDays     int
	todayCount     int
	perfectWeek    bool
	monthActive    int
	allWeekdays    bool
}

type achievementDef struct {
	id       string
	name     string
	desc     string
	icon     string
	category string
	met      func(s achievementStats) bool
}

func streakAtLeast(n int) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.streak >= n }
}

func totalAtLeast(n int) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.totalCompleted >= n }
}

func maxDailyAtLeast(n int) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.maxDaily >= n }
}

func velocityBelow(h float64) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.avgVelocity != nil && *s.avgVelocity < h }
}

func tagsAtLeast(n int) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.tagCount >= n }
}

func activeDaysAtLeast(n int) func(achievementStats) bool {
	return func(s achievementStats) bool { return s.activeDays >= n }
}

func maxDailyIn(values ...int) func(achievementStats) bool {
	return func(s achievementStats) bool {
		for _, v := range values {
			if s.maxDaily == v {
				return true
			}
		}
		return false
	}
}

// achievementCatalog is a fixed table; the entries are user-facing
// content and must not be reworded or renumbered.
var achievementCatalog = []achievementDef{
	// Streaks
	{"streak3", "On Fire", "3 day streak", "🔥", "streak", streakAtLeast(3)},
	{"streak7", "Week Warrior", "7 day streak", "⚔️", "streak", streakAtLeast(7)},
	{"streak14", "Fortnight Fighter", "14 day streak", "🛡️", "streak", streakAtLeast(14)},
	{"streak30", "Unstoppable", "30 day streak", "🚀", "streak", streakAtLeast(30)},
	{"streak60", "Habit Master", "60 day streak", "👑", "streak", streakAtLeast(60)},
	{"streak100", "Legendary", "100 day streak", "🏆", "streak", streakAtLeast(100)},
	{"streak365", "Year of Fire", "365 day streak", "🌟", "streak", streakAtLeast(365)},

	// Completion totals
	{"total1", "First Step", "Complete your first task", "👶", "milestone", totalAtLeast(1)},
	{"total10", "Getting Started", "10 tasks completed", "🌱", "milestone", totalAtLeast(10)},
	{"total25", "Quarter Century", "25 tasks completed", "🌿", "milestone", totalAtLeast(25)},
	{"total50", "Task Master", "50 tasks completed", "🎯", "milestone", totalAtLeast(50)},
	{"total100", "Century", "100 tasks completed", "💯", "milestone", totalAtLeast(100)},
	{"total250", "Task Warrior", "250 tasks completed", "⚔️", "milestone", totalAtLeast(250)},
	{"total500", "Productivity Guru", "500 tasks completed", "🧘", "milestone", totalAtLeast(500)},
	{"total1000", "Task Titan", "1000 tasks completed", "⚡", "milestone", totalAtLeast(1000)},
	{"total2500", "Grand Master", "2500 tasks completed", "🎖️", "milestone", totalAtLeast(2500)},
	{"total5000", "Task Legend", "5000 tasks completed", "🌌", "milestone", totalAtLeast(5000)},

	// Best single day
	{"daily5", "Good Day", "5+ tasks in one day", "😊", "daily", maxDailyAtLeast(5)},
	{"daily10", "Productive Day", "10+ tasks in one day", "📈", "daily", maxDailyAtLeast(10)},
	{"daily15", "Power Day", "15+ tasks in one day", "💪", "daily", maxDailyAtLeast(15)},
	{"daily20", "Super Day", "20+ tasks in one day", "⚡", "daily", maxDailyAtLeast(20)},
	{"daily30", "Ultra Day", "30+ tasks in one day", "🌟", "daily", maxDailyAtLeast(30)},
	{"daily50", "Legendary Day", "50+ tasks in one day", "🏆", "daily", maxDailyAtLeast(50)},
	{"daily100", "Mythical Day", "100+ tasks in one day", "🔮", "daily", maxDailyAtLeast(100)},

	// Velocity
	{"lightning", "Lightning Fast", "Avg completion < 1h", "⚡", "speed", velocityBelow(1)},
	{"quick", "Quick Draw", "Avg completion < 6h", "🤠", "speed", velocityBelow(6)},
	{"fast", "Speed Demon", "Avg completion < 24h", "💨", "speed", velocityBelow(24)},

	// Time of day
	{"earlybird", "Early Bird", "50+ tasks before 9 AM", "🐦", "time",
		func(s achievementStats) bool { return s.morningTasks >= 50 }},
	{"nightowl", "Night Owl", "50+ tasks after 10 PM", "🦉", "time",
		func(s achievementStats) bool { return s.nightTasks >= 50 }},
	{"earlybird100", "Morning Person", "100+ tasks before 9 AM", "🌅", "time",
		func(s achievementStats) bool { return s.morningTasks >= 100 }},
	{"nightowl100", "Nocturnal", "100+ tasks after 10 PM", "🌙", "time",
		func(s achievementStats) bool { return s.nightTasks >= 100 }},

	// Weekends
	{"weekend50", "Weekend Hustler", "50+ weekend tasks", "🏖️", "pattern",
		func(s achievementStats) bool { return s.weekendTasks >= 50 }},
	{"weekend100", "Weekend Warrior", "100+ weekend tasks", "⚔️", "pattern",
		func(s achievementStats) bool { return s.weekendTasks >= 100 }},
	{"weekend250", "No Rest", "250+ weekend tasks", "🔥", "pattern",
		func(s achievementStats) bool { return s.weekendTasks >= 250 }},

	// Tag usage
	{"tags5", "Tag Beginner", "Used 5+ different tags", "🏷️", "organization", tagsAtLeast(5)},
	{"tags10", "Tag Explorer", "Used 10+ different tags", "🗂️", "organization", tagsAtLeast(10)},
	{"tags25", "Tag Master", "Used 25+ different tags", "🎨", "organization", tagsAtLeast(25)},
	{"tags50", "Tag Wizard", "Used 50+ different tags", "🧙", "organization", tagsAtLeast(50)},
	{"tags100", "Tag Encyclopedia", "Used 100+ different tags", "📚", "organization", tagsAtLeast(100)},

	// Long-run consistency
	{"active30", "Monthly Regular", "Active for 30+ days", "📅", "consistency", activeDaysAtLeast(30)},
	{"active100", "Centurion", "Active for 100+ days", "🗓️", "consistency", activeDaysAtLeast(100)},
	{"active365", "Year-Round", "Active for 365+ days", "🎊", "consistency", activeDaysAtLeast(365)},
	{"consistent20", "Consistent Month", "20+ active days in 30 days", "📊", "consistency",
		func(s achievementStats) bool { return s.monthActive >= 20 }},

	// Specials
	{"today5", "Today's Hero", "5+ tasks today", "⭐", "special",
		func(s achievementStats) bool { return s.todayCount >= 5 }},
	{"perfectweek", "Perfect Week", "5+ tasks daily for 7 days", "💎", "special",
		func(s achievementStats) bool { return s.perfectWeek }},
	{"firsttask", "Hello World", "Complete your very first task", "👋", "special", totalAtLeast(1)},

	// Number games over the best single day
	{"prime", "Prime Time", "Complete exactly 13, 17, 23, 29, or 31 tasks in a day", "🔢", "fun",
		maxDailyIn(13, 17, 23, 29, 31)},
	{"fibonacci", "Fibonacci Fan", "Complete exactly 1, 2, 3, 5, 8, 13, or 21 tasks in a day", "🌻", "fun",
		maxDailyIn(1, 2, 3, 5, 8, 13, 21)},
	{"pi", "Pi Day", "Complete exactly 3, 14, or 31 tasks in a day", "🥧", "fun",
		maxDailyIn(3, 14, 31)},
	{"answer", "The Answer", "Complete exactly 42 tasks in a day", "🌌", "fun", maxDailyIn(42)},
	{"binary", "Binary Boss", "Complete exactly 2, 4, 8, 16, 32, or 64 tasks in a day", "💻", "fun",
		maxDailyIn(2, 4, 8, 16, 32, 64)},
	{"lucky7", "Lucky Seven", "Complete exactly 7 or 77 tasks in a day", "🍀", "fun",
		maxDailyIn(7, 77)},

	// Work patterns
	{"balanced", "Work-Life Balance", "Tasks spread across all 7 days of week", "⚖️", "pattern",
		func(s achievementStats) bool { return s.allWeekdays }},
	{"focused", "Laser Focus", "100+ tasks with single tag", "🎯", "pattern",
		func(s achievementStats) bool { return s.maxTag >= 100 }},
	{"diverse", "Jack of All Trades", "No single tag > 20% of tasks", "🤹", "pattern",
		func(s achievementStats) bool {
			return s.tagCount > 0 && float64(s.maxTag) < float64(s.totalCompleted)*0.2
		}},

	// Motivational
	{"comeback", "Comeback Kid", "Return after 7+ day break", "💪", "special",
		// Approximate: a live streak on an account with history.
		func(s achievementStats) bool { return s.streak >= 1 && s.activeDays > 10 }},
	{"marathon", "Marathon Runner", "Complete tasks for 30 days straight", "🏃", "special", streakAtLeast(30)},
	{"sprinter", "Sprinter", "10+ tasks in under 2 hours", "🏃‍♂️", "speed",
		// Needs per-burst completion timing the snapshot does not carry.
		func(s achievementStats) bool { return false }},
}

// CalculateAchievements evaluates the fixed catalog against a derived
// Analytics snapshot and partitions it into achieved and unachieved.
func CalculateAchievements(a *Analytics, now time.Time) AchievementSet {
	s := deriveAchievementStats(a, now)

	set := AchievementSet{All: make([]Achievement, 0, len(achievementCatalog))}
	for _, def := range achievementCatalog {
		entry := Achievement{
			ID:          def.id,
			Name:        def.name,
			Desc:        def.desc,
			Icon:        def.icon,
			Category:    def.category,
			Requirement: def.met(s),
		}
		set.All = append(set.All, entry)
		if entry.Requirement {
			set.Achieved = append(set.Achieved, entry)
		} else {
			set.Unachieved = append(set.Unachieved, entry)
		}
	}
	return set
}

func deriveAchievementStats(a *Analytics, now time.Time) achievementStats {
	s := achievementStats{
		streak:         a.Streak,
		totalCompleted: a.TotalCompleted,
		avgVelocity:    a.AvgVelocityHours,
		tagCount:       len(a.Tags),
		activeDays:     len(a.DailyCounts),
	}

	for _, count := range a.DailyCounts {
		if count > s.maxDaily {
			s.maxDaily = count
		}
	}

	for hour := 5; hour <= 8; hour++ {
		s.morningTasks += a.HourDistribution[hour]
	}
	for _, hour := range []int{22, 23, 0, 1, 2} {
		s.nightTasks += a.HourDistribution[hour]
	}

	s.weekendTasks = a.WeekdayDistribution[0] + a.WeekdayDistribution[6]

	s.allWeekdays = true
	for _, count := range a.WeekdayDistribution {
		if count == 0 {
			s.allWeekdays = false
			break
		}
	}

	for _, t := range a.Tags {
		if t.Count > s.maxTag {
			s.maxTag = t.Count
		}
	}

	today := midnight(now)
	s.todayCount = a.DailyCounts[DateKey(today)]

	s.perfectWeek = true
	for i := 0; i < 7; i++ {
		if a.DailyCounts[DateKey(today.AddDate(0, 0, -i))] < 5 {
			s.perfectWeek = false
			break
		}
	}

	for i := 0; i < 30; i++ {
		if a.DailyCounts[DateKey(today.AddDate(0, 0, -i))] > 0 {
			s.monthActive++
		}
	}

	return s
}
