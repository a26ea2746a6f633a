package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/taskmine/internal/analytics"
)

// Snapshot is the full derived state at one instant, written as plain
// JSON for downstream tooling.
type Snapshot struct {
	ExportedAt   string                   `json:"exported_at"`
	Analytics    *analytics.Analytics     `json:"analytics"`
	Score        analytics.ScoreBreakdown `json:"score"`
	Level        analytics.LevelProgress  `json:"level"`
	Achievements analytics.AchievementSet `json:"achievements"`
}

// ToJSON writes a pretty-printed analytics snapshot to path.
func ToJSON(a *analytics.Analytics, score analytics.ScoreBreakdown, level analytics.LevelProgress, achievements analytics.AchievementSet, path string) error {
	snapshot := Snapshot{
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		Analytics:    a,
		Score:        score,
		Level:        level,
		Achievements: achievements,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
