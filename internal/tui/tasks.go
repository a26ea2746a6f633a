package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/taskmine/internal/store"
)

var statusTabs = []string{store.StatusTodo, store.StatusDoing, store.StatusDone, store.StatusArchived}

type tasksModel struct {
	store  *store.Store
	width  int
	height int

	statusIdx int
	tasks     []store.Task
	cursor    int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formContent *string
	formPage    *string
}

func newTasksModel(s *store.Store) tasksModel {
	content, page := "", ""
	return tasksModel{
		store:       s,
		formContent: &content,
		formPage:    &page,
	}
}

func (t *tasksModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t tasksModel) status() string {
	return statusTabs[t.statusIdx]
}

type tasksDataMsg struct {
	tasks []store.Task
}

func (t tasksModel) refresh() tea.Cmd {
	status := t.status()
	return func() tea.Msg {
		tasks, _ := t.store.ListTasks(status)
		return tasksDataMsg{tasks: tasks}
	}
}

func (t tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tasksDataMsg:
		t.tasks = msg.tasks
		if t.cursor >= len(t.tasks) {
			t.cursor = max(0, len(t.tasks)-1)
		}
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.tasks)-1 {
				t.cursor++
			}
		case key.Matches(msg, keys.Left):
			if t.statusIdx > 0 {
				t.statusIdx--
				t.cursor = 0
				return t, t.refresh()
			}
		case key.Matches(msg, keys.Right):
			if t.statusIdx < len(statusTabs)-1 {
				t.statusIdx++
				t.cursor = 0
				return t, t.refresh()
			}
		case key.Matches(msg, keys.New):
			return t.showNewTaskForm()
		case key.Matches(msg, keys.Advance), key.Matches(msg, keys.Enter):
			return t.advanceSelected()
		case key.Matches(msg, keys.Archive):
			return t.archiveSelected()
		}
	}
	return t, nil
}

// nextStatus walks the TODO -> DOING -> DONE pipeline. DONE and
// ARCHIVED tasks stay put.
func nextStatus(status string) string {
	switch status {
	case store.StatusTodo:
		return store.StatusDoing
	case store.StatusDoing:
		return store.StatusDone
	}
	return status
}

func (t tasksModel) advanceSelected() (tasksModel, tea.Cmd) {
	if len(t.tasks) == 0 {
		return t, nil
	}
	task := t.tasks[t.cursor]
	next := nextStatus(task.Status)
	if next == task.Status {
		return t, nil
	}
	if err := t.store.SetStatus(task.ID, next); err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return t, tea.Batch(
		t.refresh(),
		func() tea.Msg { return taskStatusMsg{status: next} },
	)
}

func (t tasksModel) archiveSelected() (tasksModel, tea.Cmd) {
	if len(t.tasks) == 0 {
		return t, nil
	}
	task := t.tasks[t.cursor]
	if err := t.store.SetStatus(task.ID, store.StatusArchived); err != nil {
		return t, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	return t, tea.Batch(
		t.refresh(),
		func() tea.Msg { return taskStatusMsg{status: store.StatusArchived} },
	)
}

func (t tasksModel) showNewTaskForm() (tasksModel, tea.Cmd) {
	*t.formContent = ""
	*t.formPage = ""

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Task").Description("Supports #hashtags and [[page links]]").Value(t.formContent),
			huh.NewInput().Title("Page").Placeholder(store.DefaultPageTitle).Value(t.formPage),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		if *t.formContent != "" {
			if _, err := t.store.AddTask(*t.formContent, *t.formPage); err != nil {
				return t, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
				}
			}
			t.statusIdx = 0 // jump to the TODO tab where the task landed
			return t, tea.Batch(
				t.refresh(),
				func() tea.Msg { return taskAddedMsg{} },
			)
		}
		return t, t.refresh()
	}

	return t, cmd
}

func (t tasksModel) view() string {
	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Task")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View())
		return panelStyle.Width(t.width - 4).Render(content)
	}

	w := t.width - 4

	// Status tabs
	var tabs []string
	for i, s := range statusTabs {
		if i == t.statusIdx {
			tabs = append(tabs, activeTabStyle.Render(s))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(s))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Tasks"), "  ", tabRow,
	)

	if len(t.tasks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No "+t.status()+" tasks. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header)
	rows = append(rows, "")

	for i, task := range t.tasks {
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		when := ""
		if task.EditTime > 0 {
			when = mutedStyle.Render("  " + time.UnixMilli(task.EditTime).Local().Format("Jan 02 15:04"))
		}
		page := mutedStyle.Render(" [" + task.PageTitle + "]")
		rows = append(rows, style.Render(cursor+task.Content)+page+when)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: new  space: advance  d: archive  ←/→: status"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
