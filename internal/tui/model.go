package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
	"github.com/Mr-Dark-debug/hourtracker/pkg/timeutil"
)

// Source supplies weekly totals. database.Store satisfies it.
type Source interface {
	WeeklyHours(weekStart int64) (hours.TeacherHours, error)
}

// ────────────────────────────────────────────────────────────
// Model
// ────────────────────────────────────────────────────────────

// Model is the root BubbleTea model for the hour tracker.
// It owns the one piece of view state, expanded, and re-derives
// everything else from the current snapshot on each View.
type Model struct {
	policy hours.Policy
	source Source // nil for a fixed snapshot

	// Data
	week     time.Time
	snapshot hours.TeacherHours

	// UI state
	darkMode bool
	expanded bool
	width    int
	height   int
	keys     keyMap
	help     help.Model

	// Status
	statusMsg string
	err       error
}

// NewModel creates a model over a fixed snapshot.
func NewModel(policy hours.Policy, snapshot hours.TeacherHours, darkMode bool) Model {
	return Model{
		policy:    policy,
		snapshot:  snapshot,
		darkMode:  darkMode,
		keys:      defaultKeyMap().withoutStore(),
		help:      newHelp(),
		statusMsg: teacherCount(len(snapshot)),
	}
}

// NewStoreModel creates a model that loads the week containing week from src.
func NewStoreModel(policy hours.Policy, src Source, week time.Time, darkMode bool) Model {
	return Model{
		policy:    policy,
		source:    src,
		week:      timeutil.StartOfWeek(week),
		darkMode:  darkMode,
		keys:      defaultKeyMap(),
		help:      newHelp(),
		statusMsg: "Loading hours...",
	}
}

// WithExpanded returns a copy of m with the card grid open or closed.
func (m Model) WithExpanded(expanded bool) Model {
	m.expanded = expanded
	return m
}

// Toggle flips the card grid between collapsed and expanded.
func (m *Model) Toggle() {
	m.expanded = !m.expanded
}

// Expanded reports whether the card grid is shown.
func (m Model) Expanded() bool { return m.expanded }

// Snapshot returns the hours currently displayed.
func (m Model) Snapshot() hours.TeacherHours { return m.snapshot }

// Week returns the start of the displayed week (zero for fixed snapshots).
func (m Model) Week() time.Time { return m.week }

// Err returns the last load error, if any.
func (m Model) Err() error { return m.err }

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type hoursLoadedMsg struct {
	week  time.Time
	hours hours.TeacherHours
}

type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// ────────────────────────────────────────────────────────────
// Init
// ────────────────────────────────────────────────────────────

func (m Model) Init() tea.Cmd {
	if m.source == nil {
		return nil
	}
	return m.loadWeek(m.week)
}

func (m Model) loadWeek(week time.Time) tea.Cmd {
	src := m.source
	return func() tea.Msg {
		th, err := src.WeeklyHours(timeutil.ToNano(week))
		if err != nil {
			return errMsg{fmt.Errorf("loading week of %s: %w", week.Format(timeutil.WeekLayout), err)}
		}
		return hoursLoadedMsg{week: week, hours: th}
	}
}

// ────────────────────────────────────────────────────────────
// Update
// ────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case hoursLoadedMsg:
		m.week = msg.week
		m.snapshot = msg.hours
		m.err = nil
		m.statusMsg = teacherCount(len(msg.hours))
		return m, nil

	case errMsg:
		m.err = msg.err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.err)
		return m, nil
	}

	return m, nil
}

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.statusMsg = "Loading hours..."
		return m, m.loadWeek(m.week)

	case key.Matches(msg, m.keys.PrevWeek):
		m.statusMsg = "Loading hours..."
		return m, m.loadWeek(timeutil.ShiftWeek(m.week, -1))

	case key.Matches(msg, m.keys.NextWeek):
		m.statusMsg = "Loading hours..."
		return m, m.loadWeek(timeutil.ShiftWeek(m.week, 1))
	}

	return m, nil
}

// ────────────────────────────────────────────────────────────
// View
// ────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := renderHeader(&m)
	footer := renderFooter(&m)

	body := Render(m.policy, m.snapshot, Options{
		DarkMode: m.darkMode,
		Expanded: m.expanded,
		Width:    m.width,
	})
	if body == "" {
		body = lipgloss.Place(
			m.width,
			maxInt(m.height-2, 1), // minus header + footer
			lipgloss.Center,
			lipgloss.Center,
			emptyStateStyle.Render("No teaching hours recorded."),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func teacherCount(n int) string {
	if n == 1 {
		return "1 teacher"
	}
	return fmt.Sprintf("%d teachers", n)
}
