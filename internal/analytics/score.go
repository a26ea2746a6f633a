package analytics

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// ScoreComponent is one weighted slice of the productivity score.
// Value is the human-readable raw measurement behind the points.
type ScoreComponent struct {
	Score      int    `json:"score"`
	Max        int    `json:"max"`
	Percentage int    `json:"percentage"`
	Value      string `json:"value"`
	Label      string `json:"label"`
}

// ScoreBreakdown is a 0-100 productivity score with its components.
type ScoreBreakdown struct {
	Total      int `json:"total"`
	Components struct {
		Streak       ScoreComponent `json:"streak"`
		DailyAverage ScoreComponent `json:"dailyAverage"`
		Consistency  ScoreComponent `json:"consistency"`
		Velocity     ScoreComponent `json:"velocity"`
	} `json:"components"`
}

// CalculateProductivityScore grades a derived Analytics snapshot:
// streak and daily average are worth 30 points each, 30-day
// consistency and completion velocity 20 each. Velocity scores 0 when
// unknown or at 48h and beyond, rising linearly to 20 at instant
// completion.
func CalculateProductivityScore(a *Analytics, now time.Time) ScoreBreakdown {
	streakScore := math.Min(float64(a.Streak)*3, 30)

	avgValue, _ := strconv.ParseFloat(a.DailyAverage, 64)
	avgScore := math.Min(avgValue*4, 30)

	cutoff := midnight(now).AddDate(0, 0, -30)
	activeDays := 0
	for key := range a.DailyCounts {
		d, err := time.ParseInLocation("2006-01-02", key, time.Local)
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			activeDays++
		}
	}
	consistencyScore := math.Min(float64(activeDays)/30*20, 20)

	velocityScore := 0.0
	velocityValue := "N/A"
	if a.AvgVelocityHours != nil {
		if *a.AvgVelocityHours < 48 {
			velocityScore = math.Max(20-*a.AvgVelocityHours/2.4, 0)
		}
		velocityValue = fmt.Sprintf("%.1fh", *a.AvgVelocityHours)
	}

	var b ScoreBreakdown
	b.Total = int(math.Round(streakScore + avgScore + consistencyScore + velocityScore))
	b.Components.Streak = component(streakScore, 30, strconv.Itoa(a.Streak), "Streak")
	b.Components.DailyAverage = component(avgScore, 30, a.DailyAverage, "Daily Average")
	b.Components.Consistency = component(consistencyScore, 20, strconv.Itoa(activeDays), "Consistency")
	b.Components.Velocity = component(velocityScore, 20, velocityValue, "Velocity")
	return b
}

func component(score float64, max int, value, label string) ScoreComponent {
	return ScoreComponent{
		Score:      int(math.Round(score)),
		Max:        max,
		Percentage: int(math.Round(score / float64(max) * 100)),
		Value:      value,
		Label:      label,
	}
}
