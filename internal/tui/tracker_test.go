package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

func sampleHours() hours.TeacherHours {
	return hours.TeacherHours{
		{Name: "Anisha", Hours: 10},
		{Name: "Rohan", Hours: 16},
		{Name: "Zara", Hours: 8},
		{Name: "Maya", Hours: 13},
	}
}

func TestRenderEmptyIsNoop(t *testing.T) {
	if out := Render(hours.DefaultPolicy(), nil, Options{DarkMode: true, Expanded: true}); out != "" {
		t.Errorf("expected empty render, got %q", out)
	}
}

func TestRenderCollapsed(t *testing.T) {
	out := Render(hours.DefaultPolicy(), sampleHours(), Options{DarkMode: true, Width: 120})

	for _, want := range []string{
		"Teacher Hour Tracker",
		"Weekly limit: 15 hours per teacher",
		"47.0", "Total Hours",
		"11.8", "Avg per Teacher",
		"Active Teachers",
		"Teacher Cards ▾",
		"Under 9h", "9-12h", "12-15h", "Over 15h",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("collapsed render missing %q", want)
		}
	}

	for _, hidden := range []string{"Priority Teacher", "Limit Exceeded", "Progress"} {
		if strings.Contains(out, hidden) {
			t.Errorf("collapsed render should not contain %q", hidden)
		}
	}
}

func TestRenderExpanded(t *testing.T) {
	out := Render(hours.DefaultPolicy(), sampleHours(), Options{DarkMode: false, Expanded: true, Width: 140})

	for _, want := range []string{
		"Teacher Cards ▴",
		"Rohan", "Anisha", "Maya", "Zara",
		"Priority Teacher",
		"Limit Exceeded", "Near Limit", "Available",
		"Over limit", "2.0h left", "5.0h available", "7.0h available",
		"16h", "100%", "53%",
		"★", "↗",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expanded render missing %q", want)
		}
	}

	// Cards follow roster order: Rohan, Anisha, Maya, Zara.
	idx := func(s string) int { return strings.Index(out, s) }
	if !(idx("Rohan") < idx("Anisha") && idx("Anisha") < idx("Maya") && idx("Maya") < idx("Zara")) {
		t.Errorf("cards not in roster order:\n%s", out)
	}
}

func TestRenderRespectsWidth(t *testing.T) {
	for _, width := range []int{36, 40, 60, 80, 120, 160} {
		out := Render(hours.DefaultPolicy(), sampleHours(), Options{Expanded: true, Width: width})
		if w := lipgloss.Width(out); w > width {
			t.Errorf("width %d: render is %d columns wide", width, w)
		}
	}
}

func TestCardGridNarrowsToWidth(t *testing.T) {
	sum, _ := hours.DefaultPolicy().Summarize(sampleHours())
	for _, width := range []int{20, 24, 30} {
		grid := renderCardGrid(NewTheme(true), sum, width)
		if w := lipgloss.Width(grid); w > width {
			t.Errorf("width %d: card grid is %d columns wide", width, w)
		}
		// One top border per card means no card was split by wrapping.
		if n := strings.Count(grid, "╭"); n != len(sum.Cards) {
			t.Errorf("width %d: expected %d card tops, got %d", width, len(sum.Cards), n)
		}
	}
}

func TestRenderRoundsTiesUp(t *testing.T) {
	// Average of 10 and 12.5 is exactly 11.25.
	out := Render(hours.DefaultPolicy(), hours.TeacherHours{{Name: "Ada", Hours: 10}, {Name: "Bea", Hours: 12.5}}, Options{Width: 140})
	if !strings.Contains(out, "11.3") {
		t.Errorf("expected average 11.3 in\n%s", out)
	}

	// 1.875 of 15 hours is exactly 12.5%.
	out = Render(hours.DefaultPolicy(), hours.TeacherHours{{Name: "Cy", Hours: 1.875}}, Options{Expanded: true, Width: 140})
	if !strings.Contains(out, "13%") {
		t.Errorf("expected progress 13%% in\n%s", out)
	}
}

func TestRenderCustomLimits(t *testing.T) {
	p := hours.Policy{Limits: hours.Limits{Low: 5, Near: 8, Weekly: 10}}
	out := Render(p, hours.TeacherHours{{Name: "Ada", Hours: 9}}, Options{Width: 120})
	for _, want := range []string{"Weekly limit: 10 hours per teacher", "Under 5h", "5-8h", "8-10h", "Over 10h"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestPriorityBadgeOnlyOnPriorityCards(t *testing.T) {
	out := Render(hours.DefaultPolicy(), hours.TeacherHours{{Name: "Maya", Hours: 3}}, Options{Expanded: true, Width: 100})
	if strings.Contains(out, "Priority Teacher") || strings.Contains(out, "★") {
		t.Error("non-priority teacher rendered with a priority badge")
	}
	// A single teacher is never above the average of one.
	if strings.Contains(out, "↗") {
		t.Error("single teacher rendered with an above-average marker")
	}
}

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{10, 1},
		{cardWidth, 1},
		{2*cardWidth + cardGap, 2},
		{500, maxCols},
	}
	for _, tt := range tests {
		if got := gridColumns(tt.width, cardWidth, cardGap, maxCols); got != tt.want {
			t.Errorf("gridColumns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Mrigakshi Venkataraman", 10); got != "Mrigaks..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Zara", 10); got != "Zara" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Zara", 0); got != "" {
		t.Errorf("truncate = %q", got)
	}
}
