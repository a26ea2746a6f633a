package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/taskmine/internal/analytics"
	"github.com/sadopc/taskmine/internal/store"
)

type trendMode int

const (
	trendDaily trendMode = iota
	trendWeekday
	trendHour
)

const trendWindowDays = 14

var trendModeNames = []string{"Daily", "Weekday", "Hour"}

var weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type trendsModel struct {
	store  *store.Store
	width  int
	height int

	mode      trendMode
	analytics *analytics.Analytics
	offset    int // 14-day blocks back from today (0 = current)

	chart barchart.Model
}

func newTrendsModel(s *store.Store) trendsModel {
	return trendsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (r *trendsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type trendsDataMsg struct {
	analytics *analytics.Analytics
}

func (r trendsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		records, _ := r.store.CompletedRecords()
		return trendsDataMsg{analytics: analytics.Compute(records, time.Now())}
	}
}

// dateRange returns the half-open day window for the daily chart.
func (r trendsModel) dateRange() (time.Time, time.Time) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	end := today.AddDate(0, 0, 1-trendWindowDays*r.offset)
	return end.AddDate(0, 0, -trendWindowDays), end
}

func (r trendsModel) update(msg tea.Msg) (trendsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case trendsDataMsg:
		r.analytics = msg.analytics
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if r.mode == trendDaily {
				r.offset++
				r.buildChart()
			}
			return r, nil
		case key.Matches(msg, keys.Right):
			if r.mode == trendDaily && r.offset > 0 {
				r.offset--
				r.buildChart()
			}
			return r, nil
		case key.Matches(msg, keys.Enter):
			r.mode = (r.mode + 1) % 3
			r.offset = 0
			r.buildChart()
			return r, nil
		}
	}
	return r, nil
}

func (r *trendsModel) buildChart() {
	if r.analytics == nil {
		return
	}

	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	switch r.mode {
	case trendWeekday:
		bars = distributionBars(r.analytics.WeekdayDistribution[:], weekdayLabels)
	case trendHour:
		labels := make([]string, 24)
		for h := range labels {
			labels[h] = fmt.Sprintf("%02d", h)
		}
		bars = distributionBars(r.analytics.HourDistribution[:], labels)
	default:
		bars = r.dailyBars()
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r trendsModel) dailyBars() []barchart.BarData {
	from, to := r.dateRange()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		count := r.analytics.DailyCounts[analytics.DateKey(d)]

		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if count == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}

		bars = append(bars, barchart.BarData{
			Label: d.Format("02"),
			Values: []barchart.BarValue{
				{Name: analytics.DateKey(d), Value: float64(count), Style: style},
			},
		})
	}
	return bars
}

func distributionBars(counts []int, labels []string) []barchart.BarData {
	bars := make([]barchart.BarData, len(counts))
	for i, count := range counts {
		style := lipgloss.NewStyle().Foreground(colorSecondary)
		if count == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars[i] = barchart.BarData{
			Label: labels[i],
			Values: []barchart.BarValue{
				{Name: labels[i], Value: float64(count), Style: style},
			},
		}
	}
	return bars
}

func (r trendsModel) view() string {
	w := r.width - 4

	var tabs []string
	for i, name := range trendModeNames {
		if trendMode(i) == r.mode {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var rangeLabel string
	if r.mode == trendDaily {
		from, to := r.dateRange()
		rangeLabel = mutedStyle.Render(fmt.Sprintf("%s — %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Trends"), "  ", modeTabs, "  ", rangeLabel,
	)

	chartView := r.chart.View()
	tableView := r.renderBreakdown()

	nav := mutedStyle.Render("  enter: switch mode")
	if r.mode == trendDaily {
		nav = mutedStyle.Render("  ←/→: navigate  enter: switch mode")
	}

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", tableView, "", nav,
		),
	)
}

// renderBreakdown lists the busiest tags and pages under the chart.
func (r trendsModel) renderBreakdown() string {
	if r.analytics == nil || (len(r.analytics.Tags) == 0 && len(r.analytics.Pages) == 0) {
		return mutedStyle.Render("  No completed tasks yet")
	}

	var rows []string
	if len(r.analytics.Tags) > 0 {
		rows = append(rows, titleStyle.Render("  Top Tags"))
		for _, tag := range r.analytics.Tags {
			rows = append(rows, fmt.Sprintf("    %s %-24s %4d",
				accentStyle.Render("#"), tag.Name, tag.Count))
		}
	}
	if len(r.analytics.Pages) > 0 {
		rows = append(rows, titleStyle.Render("  Top Pages"))
		for _, page := range r.analytics.Pages {
			rows = append(rows, fmt.Sprintf("    %s %-24s %4d",
				highlightStyle.Render("▤"), page.Name, page.Count))
		}
	}
	return strings.Join(rows, "\n")
}
