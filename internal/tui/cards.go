package tui

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

const (
	cardWidth    = 32 // including border
	minCardWidth = 16
	cardGap      = 2
	maxCols      = 4
)

// renderCardGrid lays out one card per teacher in roster order. Cards
// narrow to fit width when it is below cardWidth.
func renderCardGrid(t Theme, sum hours.Summary, width int) string {
	w := clamp(width, minCardWidth, cardWidth)
	cols := gridColumns(width, w, cardGap, maxCols)
	blocks := make([]string, 0, len(sum.Cards))
	for _, c := range sum.Cards {
		blocks = append(blocks, renderTeacherCard(t, c, w))
	}
	return joinGrid(blocks, cols, cardGap)
}

// renderTeacherCard draws one teacher's tile:
//
//	↗                          ★
//	● Rohan               ⚠ 16h
//	  Priority Teacher
//	Progress               100%
//	████████████████████████████
//	Limit Exceeded    Over limit
func renderTeacherCard(t Theme, c hours.Card, width int) string {
	inner := width - 4 // border + padding

	var lines []string

	// Corner markers: above-average trend (left) and priority award (right).
	trend, award := "", ""
	if c.AboveAverage {
		trend = t.accent.Render("↗")
	}
	if c.Priority {
		award = t.award.Render("★")
	}
	if trend != "" || award != "" {
		lines = append(lines, justify(trend, award, inner))
	}

	badge := t.statusBadge(c)
	nameWidth := inner - lipgloss.Width(badge) - 3
	name := t.avatar.Render("●") + " " + t.primary.Bold(true).Render(truncate(c.Name, nameWidth))
	lines = append(lines, justify(name, badge, inner))
	if c.Priority {
		lines = append(lines, "  "+t.award.Render("Priority Teacher"))
	}

	lines = append(lines, "")
	lines = append(lines, justify(
		t.secondary.Render("Progress"),
		t.secondary.Render(hours.FormatPercent(c.Progress)),
		inner,
	))
	lines = append(lines, progressBar(t, c, inner))

	lines = append(lines, "")
	lines = append(lines, justify(
		lipgloss.NewStyle().Foreground(statusTextColor(c.Status)).Bold(true).Render(c.Status.Label()),
		t.secondary.Render(c.Caption),
		inner,
	))

	g := statusGradient(c.Status)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(g.from).
		Padding(0, 1).
		Width(width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// progressBar renders the clamped progress as a status-colored gradient.
func progressBar(t Theme, c hours.Card, width int) string {
	g := statusGradient(c.Status)
	bar := progress.New(
		progress.WithGradient(string(g.from), string(g.to)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.trackColor)
	return bar.ViewAs(c.Progress / 100)
}
