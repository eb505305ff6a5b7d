// Package tui renders the teacher hour tracker card for the terminal,
// built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	tracker.go — Render entry point, card header, band summary tiles
//	cards.go   — per-teacher card grid with gradient progress bars
//	model.go   — root model, message routing, Init/Update/View
//	keys.go    — key bindings and help
//	header.go  — program top bar and footer
//	theme.go   — centralized color + style definitions, dark/light
//	helpers.go — justification, grid layout, truncation
package tui
