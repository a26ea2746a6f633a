package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/taskmine/internal/analytics"
	"github.com/sadopc/taskmine/internal/store"
)

// Category display order. Categories not listed sort last.
var achievementCategories = []string{
	"streak", "milestone", "daily", "speed", "time",
	"pattern", "organization", "consistency", "special", "fun",
}

type achievementsModel struct {
	store  *store.Store
	width  int
	height int

	set    analytics.AchievementSet
	loaded bool
	scroll int
}

func newAchievementsModel(s *store.Store) achievementsModel {
	return achievementsModel{store: s}
}

func (m *achievementsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type achievementsDataMsg struct {
	set analytics.AchievementSet
}

func (m achievementsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		records, _ := m.store.CompletedRecords()
		a := analytics.Compute(records, now)
		return achievementsDataMsg{set: analytics.CalculateAchievements(a, now)}
	}
}

func (m achievementsModel) update(msg tea.Msg) (achievementsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case achievementsDataMsg:
		m.set = msg.set
		m.loaded = true
		m.scroll = 0
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.scroll > 0 {
				m.scroll--
			}
		case key.Matches(msg, keys.Down):
			m.scroll++
		}
	}
	return m, nil
}

func (m achievementsModel) view() string {
	w := m.width - 4
	if !m.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading achievements..."))
	}

	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Achievements"),
		highlightStyle.Render(fmt.Sprintf("%d / %d unlocked", len(m.set.Achieved), len(m.set.All))),
	)

	lines := []string{header, ""}

	byCategory := make(map[string][]analytics.Achievement)
	for _, a := range m.set.All {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	categories := achievementCategories
	for cat := range byCategory {
		if !containsCategory(categories, cat) {
			categories = append(categories, cat)
		}
	}

	for _, cat := range categories {
		entries := byCategory[cat]
		if len(entries) == 0 {
			continue
		}
		unlocked := 0
		for _, a := range entries {
			if a.Requirement {
				unlocked++
			}
		}
		lines = append(lines, subtitleStyle.Render(fmt.Sprintf("%s (%d/%d)", strings.ToUpper(cat), unlocked, len(entries))))
		for _, a := range entries {
			if a.Requirement {
				lines = append(lines, achievedStyle.Render(fmt.Sprintf("  %s %-22s", a.Icon, a.Name))+mutedStyle.Render(a.Desc))
			} else {
				lines = append(lines, lockedStyle.Render(fmt.Sprintf("  🔒 %-22s %s", a.Name, a.Desc)))
			}
		}
		lines = append(lines, "")
	}

	lines = append(lines, mutedStyle.Render("  ↑/↓: scroll"))

	// Clamp scroll to keep at least one screen of content visible.
	visible := m.height - 6
	if visible < 5 {
		visible = 5
	}
	maxScroll := max(0, len(lines)-visible)
	scroll := min(m.scroll, maxScroll)
	end := min(scroll+visible, len(lines))

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines[scroll:end]...),
	)
}

func containsCategory(categories []string, cat string) bool {
	for _, c := range categories {
		if c == cat {
			return true
		}
	}
	return false
}
