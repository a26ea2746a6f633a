package tui

import (
	"fmt"
	"strings"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewTrends
	viewAchievements
	viewSearch
	viewSettings
)

var viewNames = []string{"Dashboard", "Tasks", "Trends", "Achievements", "Search", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type taskAddedMsg struct{}

type taskStatusMsg struct {
	status string
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// progressBar renders a filled/empty bar like ████░░░░ at the given
// width. ratio is clamped to [0, 1].
func progressBar(ratio float64, width int) string {
	if width < 1 {
		width = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
