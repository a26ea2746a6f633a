package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/taskmine/internal/analytics"
	"github.com/sadopc/taskmine/internal/store"
)

type searchResult struct {
	task  store.Task
	score int
}

type searchModel struct {
	store  *store.Store
	width  int
	height int

	input   textinput.Model
	tasks   []store.Task
	results []searchResult
	cursor  int
	limit   int
}

func newSearchModel(s *store.Store) searchModel {
	input := textinput.New()
	input.Placeholder = "Type to search tasks..."
	input.Prompt = "/ "
	input.CharLimit = 120
	return searchModel{
		store: s,
		input: input,
		limit: 50,
	}
}

func (m *searchModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// inputFocused reports whether keystrokes belong to the query box.
func (m searchModel) inputFocused() bool {
	return m.input.Focused()
}

type searchDataMsg struct {
	tasks []store.Task
	limit int
}

func (m searchModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, _ := m.store.ListAllTasks()
		return searchDataMsg{
			tasks: tasks,
			limit: m.store.GetIntSetting("search_limit", 50),
		}
	}
}

func (m searchModel) update(msg tea.Msg) (searchModel, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDataMsg:
		m.tasks = msg.tasks
		m.limit = msg.limit
		m.rank()
		if !m.input.Focused() {
			return m, m.input.Focus()
		}
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			switch {
			case key.Matches(msg, keys.Back):
				m.input.Blur()
				return m, nil
			case key.Matches(msg, keys.Enter):
				m.input.Blur()
				m.cursor = 0
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.rank()
			return m, cmd
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Enter):
			return m, m.input.Focus()
		}
	}
	return m, nil
}

// rank scores every tracked task against the query and keeps the best
// matches, capped at the configured search limit.
func (m *searchModel) rank() {
	query := m.input.Value()
	m.results = m.results[:0]
	m.cursor = 0

	if strings.TrimSpace(query) == "" {
		return
	}

	for _, task := range m.tasks {
		score := analytics.FuzzyScore(query, task.Content)
		if pageScore := analytics.FuzzyScore(query, task.PageTitle); pageScore > score {
			score = pageScore
		}
		if score > 0 {
			m.results = append(m.results, searchResult{task: task, score: score})
		}
	}

	sort.SliceStable(m.results, func(i, j int) bool {
		return m.results[i].score > m.results[j].score
	})

	if len(m.results) > m.limit {
		m.results = m.results[:m.limit]
	}
}

func (m searchModel) view() string {
	w := m.width - 4

	rows := []string{
		titleStyle.Render("Search"),
		"",
		m.input.View(),
		"",
	}

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
		rows = append(rows, mutedStyle.Render("  Matches task content and page titles."))
	case len(m.results) == 0:
		rows = append(rows, mutedStyle.Render("  No matches."))
	default:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d matches", len(m.results))))
		rows = append(rows, "")

		visible := m.height - 10
		if visible < 3 {
			visible = 3
		}
		start := 0
		if m.cursor >= visible {
			start = m.cursor - visible + 1
		}
		end := min(start+visible, len(m.results))

		for i := start; i < end; i++ {
			r := m.results[i]
			cursor := "  "
			style := normalItemStyle
			if i == m.cursor && !m.input.Focused() {
				cursor = "> "
				style = selectedItemStyle
			}
			status := statusGlyph(r.task.Status)
			page := mutedStyle.Render(" [" + r.task.PageTitle + "]")
			rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, status, r.task.Content))+page)
		}
	}

	rows = append(rows, "")
	if m.input.Focused() {
		rows = append(rows, mutedStyle.Render("  enter: browse results  esc: leave query"))
	} else {
		rows = append(rows, mutedStyle.Render("  ↑/↓: move  enter: edit query"))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func statusGlyph(status string) string {
	switch status {
	case store.StatusDone:
		return successStyle.Render("✔")
	case store.StatusDoing:
		return warningStyle.Render("◐")
	case store.StatusArchived:
		return mutedStyle.Render("▪")
	}
	return mutedStyle.Render("○")
}
