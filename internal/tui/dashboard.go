package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/taskmine/internal/analytics"
	"github.com/sadopc/taskmine/internal/store"
)

type dashboardModel struct {
	store  *store.Store
	width  int
	height int

	analytics *analytics.Analytics
	score     analytics.ScoreBreakdown
	level     analytics.LevelProgress
	dailyGoal int
	todayDone int
	achieved  int
	totalAch  int
}

func newDashboardModel(s *store.Store) dashboardModel {
	return dashboardModel{store: s}
}

func (d dashboardModel) Init() tea.Cmd {
	return d.loadData()
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type dashboardDataMsg struct {
	analytics *analytics.Analytics
	score     analytics.ScoreBreakdown
	level     analytics.LevelProgress
	dailyGoal int
	todayDone int
	achieved  int
	totalAch  int
}

func (d dashboardModel) loadData() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()

		records, _ := d.store.CompletedRecords()
		a := analytics.Compute(records, now)
		a.TotalTodos, _ = d.store.CountTracked()

		achievements := analytics.CalculateAchievements(a, now)

		return dashboardDataMsg{
			analytics: a,
			score:     analytics.CalculateProductivityScore(a, now),
			level:     analytics.CalculateLevelAndXP(a.TotalCompleted),
			dailyGoal: d.store.GetIntSetting("daily_goal", 5),
			todayDone: a.DailyCounts[analytics.DateKey(now)],
			achieved:  len(achievements.Achieved),
			totalAch:  len(achievements.All),
		}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		d.analytics = msg.analytics
		d.score = msg.score
		d.level = msg.level
		d.dailyGoal = msg.dailyGoal
		d.todayDone = msg.todayDone
		d.achieved = msg.achieved
		d.totalAch = msg.totalAch
		return d, nil
	}
	return d, nil
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	if d.analytics == nil {
		return mutedStyle.Render("Loading analytics...")
	}

	contentWidth := d.width - 4

	scorePanel := d.renderScorePanel(contentWidth)
	levelPanel := d.renderLevelPanel(contentWidth)
	statsPanel := d.renderStatsPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, scorePanel, levelPanel, statsPanel)
}

func (d dashboardModel) renderScorePanel(w int) string {
	title := titleStyle.Render("Productivity Score")
	total := scoreStyle.Render(fmt.Sprintf("%d / 100", d.score.Total))

	barWidth := min(w-40, 30)
	if barWidth < 10 {
		barWidth = 10
	}

	components := []analytics.ScoreComponent{
		d.score.Components.Streak,
		d.score.Components.DailyAverage,
		d.score.Components.Consistency,
		d.score.Components.Velocity,
	}

	rows := []string{fmt.Sprintf("%s  %s", title, total), ""}
	for _, c := range components {
		bar := progressBar(float64(c.Score)/float64(c.Max), barWidth)
		style := successStyle
		if c.Percentage < 50 {
			style = warningStyle
		}
		rows = append(rows, fmt.Sprintf("  %-14s %s %3d/%-2d  %s",
			c.Label,
			style.Render(bar),
			c.Score, c.Max,
			mutedStyle.Render(c.Value),
		))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderLevelPanel(w int) string {
	title := titleStyle.Render(fmt.Sprintf("Level %d", d.level.Level))
	xp := mutedStyle.Render(fmt.Sprintf("%d / %d XP", d.level.XP, d.level.XPRequired))

	barWidth := min(w-12, 40)
	if barWidth < 10 {
		barWidth = 10
	}
	bar := highlightStyle.Render(progressBar(float64(d.level.XPProgress)/100, barWidth))

	rows := []string{
		fmt.Sprintf("%s  %s", title, xp),
		fmt.Sprintf("  %s %d%%", bar, d.level.XPProgress),
	}
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d dashboardModel) renderStatsPanel(w int) string {
	a := d.analytics

	streakText := fmt.Sprintf("%d day streak", a.Streak)
	if a.Streak == 0 {
		streakText = "no streak"
	}

	velocity := "N/A"
	if a.AvgVelocityHours != nil {
		velocity = formatHours(*a.AvgVelocityHours)
	}

	goalStyle := warningStyle
	if d.todayDone >= d.dailyGoal {
		goalStyle = successStyle
	}

	rows := []string{
		titleStyle.Render("At a Glance"),
		"",
		fmt.Sprintf("  %s  %s", accentStyle.Render("🔥"), streakText),
		fmt.Sprintf("  %s  %d tasks completed all-time, %d tracked", highlightStyle.Render("✔"), a.TotalCompleted, a.TotalTodos),
		fmt.Sprintf("  %s  %s avg tasks/day over 30 days", highlightStyle.Render("∅"), a.DailyAverage),
		fmt.Sprintf("  %s  %s avg completion time", highlightStyle.Render("⚡"), velocity),
		fmt.Sprintf("  %s  today: %s", highlightStyle.Render("◎"), goalStyle.Render(fmt.Sprintf("%d / %d goal", d.todayDone, d.dailyGoal))),
		fmt.Sprintf("  %s  achievements: %d / %d", highlightStyle.Render("★"), d.achieved, d.totalAch),
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
