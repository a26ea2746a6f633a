package analytics

import "math"

// LevelProgress is the gamified level derived from total completions,
// at one XP per completed task.
type LevelProgress struct {
	Level      int `json:"level"`
	XP         int `json:"xp"`
	XPRequired int `json:"xpRequired"`
	XPProgress int `json:"xpProgress"`
}

const (
	levelBaseXP     = 10
	levelMultiplier = 1.2
)

// CalculateLevelAndXP walks levels upward from 1, spending XP as it
// goes. The cost of level L is floor(10 * 1.2^(L-1)), so costs grow
// and the walk always terminates. totalCompleted of 0 yields level 1
// with 0/10 progress.
func CalculateLevelAndXP(totalCompleted int) LevelProgress {
	level := 1
	totalXPRequired := 0
	xpForCurrentLevel := levelBaseXP

	for totalXPRequired+xpForCurrentLevel <= totalCompleted {
		totalXPRequired += xpForCurrentLevel
		level++
		xpForCurrentLevel = int(math.Floor(levelBaseXP * math.Pow(levelMultiplier, float64(level-1))))
	}

	xpInCurrentLevel := totalCompleted - totalXPRequired

	return LevelProgress{
		Level:      level,
		XP:         xpInCurrentLevel,
		XPRequired: xpForCurrentLevel,
		XPProgress: int(math.Round(float64(xpInCurrentLevel) / float64(xpForCurrentLevel) * 100)),
	}
}
