package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 100

// Options controls a single render of the tracker card.
type Options struct {
	DarkMode bool
	Expanded bool
	Width    int
}

// Render draws the hour tracker card for th. It returns "" when th is
// empty; there is nothing else it can fail on.
func Render(policy hours.Policy, th hours.TeacherHours, opts Options) string {
	sum, ok := policy.Summarize(th)
	if !ok {
		return ""
	}
	return renderSummary(policy, sum, opts)
}

func renderSummary(policy hours.Policy, sum hours.Summary, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	theme := NewTheme(opts.DarkMode)

	// frame border (2) + horizontal padding (4)
	inner := maxInt(width-6, 20)

	sections := []string{
		renderCardHeader(theme, policy.Limits, sum, opts.Expanded, inner),
		"",
		renderBuckets(theme, policy.Limits, sum.Buckets, inner),
	}
	if opts.Expanded {
		sections = append(sections, "", renderCardGrid(theme, sum, inner))
	}

	return theme.frame.Width(inner + 4).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// ────────────────────────────────────────────────────────────
// Header: title, aggregate stats, cards toggle
// ────────────────────────────────────────────────────────────

func renderCardHeader(t Theme, l hours.Limits, sum hours.Summary, expanded bool, width int) string {
	title := lipgloss.JoinVertical(lipgloss.Left,
		t.accent.Render("◷")+" "+t.title.Render("Teacher Hour Tracker"),
		t.secondary.Render(fmt.Sprintf("Weekly limit: %s hours per teacher", hours.FormatLimit(l.Weekly))),
	)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBlock(t, hours.FormatHours(sum.Total), "Total Hours"),
		"   ",
		statBlock(t, hours.FormatHours(sum.Average), "Avg per Teacher"),
		"   ",
		statBlock(t, strconv.Itoa(sum.Count), "Active Teachers"),
		"   ",
		toggleButton(t, expanded),
	)

	if lipgloss.Width(stats) > width {
		stats = lipgloss.JoinVertical(lipgloss.Left,
			compactStat(t, hours.FormatHours(sum.Total), "Total Hours"),
			compactStat(t, hours.FormatHours(sum.Average), "Avg per Teacher"),
			compactStat(t, strconv.Itoa(sum.Count), "Active Teachers"),
			toggleButton(t, expanded),
		)
	}
	if lipgloss.Width(title)+lipgloss.Width(stats)+2 > width {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", stats)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), stats)
}

func statBlock(t Theme, value, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		t.title.Render(value),
		t.secondary.Render(label),
	)
}

func compactStat(t Theme, value, label string) string {
	return t.title.Render(value) + " " + t.secondary.Render(label)
}

// toggleButton shows the cards control with a chevron for its state.
func toggleButton(t Theme, expanded bool) string {
	chevron := "▾"
	if expanded {
		chevron = "▴"
	}
	return t.button.Render(t.accent.Render("●") + " Teacher Cards " + chevron)
}

// ────────────────────────────────────────────────────────────
// Summary bar: four band tiles
// ────────────────────────────────────────────────────────────

func renderBuckets(t Theme, l hours.Limits, b hours.Buckets, width int) string {
	const gap = 2
	bands := b.Bands(l)

	tileWidth := (width - gap*(len(bands)-1)) / len(bands)
	cols := len(bands)
	if tileWidth < 14 {
		cols = 2
		tileWidth = (width - gap) / 2
	}

	tiles := make([]string, 0, len(bands))
	for _, bc := range bands {
		tiles = append(tiles, bucketTile(t, bc, tileWidth))
	}
	return joinGrid(tiles, cols, gap)
}

func bucketTile(t Theme, bc hours.BandCount, width int) string {
	border, label := bandColors(bc.Band)
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.title.Render(strconv.Itoa(bc.Count)),
		lipgloss.NewStyle().Foreground(label).Render(bc.Label),
	)
	// border (2) + padding (2)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(maxInt(width-2, 4)).
		Render(body)
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
