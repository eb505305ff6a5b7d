package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Layout helpers
// ────────────────────────────────────────────────────────────

// justify places left and right at opposite ends of a width-wide line.
// If they do not fit, they are separated by a single space.
func justify(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// gridColumns returns how many cards of cardWidth fit in width,
// between 1 and maxCols.
func gridColumns(width, cardWidth, gap, maxCols int) int {
	if cardWidth <= 0 {
		return 1
	}
	cols := (width + gap) / (cardWidth + gap)
	return clamp(cols, 1, maxCols)
}

// joinGrid lays out blocks left-to-right in rows of cols.
func joinGrid(blocks []string, cols, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)

	var rows []string
	for start := 0; start < len(blocks); start += cols {
		end := minInt(start+cols, len(blocks))
		var row []string
		for i := start; i < end; i++ {
			if i > start {
				row = append(row, spacer)
			}
			row = append(row, blocks[i])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// minInt returns the smaller of a and b.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
