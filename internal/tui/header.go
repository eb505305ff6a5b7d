package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/pkg/timeutil"
)

// renderHeader produces the top bar:
//
//	HOURTRACKER  |  Mon 2026-10-12 – Sun 2026-10-18  |  light
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("HOURTRACKER")
	sep := headerSepStyle.Render(" │ ")

	parts := []string{brand}

	if m.source != nil {
		parts = append(parts, sep, headerMetaStyle.Render(timeutil.FormatWeek(m.week)))
	} else {
		parts = append(parts, sep, headerMetaStyle.Render("Snapshot"))
	}

	theme := "dark"
	if !m.darkMode {
		theme = "light"
	}
	parts = append(parts, sep, headerMetaStyle.Render(theme))

	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints.
func renderFooter(m *Model) string {
	var left string
	if m.statusMsg != "" {
		if m.err != nil {
			left = statusErrStyle.Render(m.statusMsg)
		} else {
			left = statusStyle.Render(m.statusMsg)
		}
	}
	right := m.help.ShortHelpView(m.keys.ShortHelp())

	bar := justify(left, right, m.width)
	return lipgloss.NewStyle().
		Background(colorGray800).
		Width(m.width).
		Render(bar)
}
