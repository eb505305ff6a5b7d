package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
)

// ────────────────────────────────────────────────────────────
// Color Palette — Tailwind-ish status colors
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.
// Status and band colors are shared by both themes; only surfaces
// and text change between dark and light.

var (
	// Status gradients (from → to)
	colorRed500     = lipgloss.Color("#ef4444")
	colorRed600     = lipgloss.Color("#dc2626")
	colorYellow500  = lipgloss.Color("#eab308")
	colorOrange500  = lipgloss.Color("#f97316")
	colorGreen500   = lipgloss.Color("#22c55e")
	colorEmerald500 = lipgloss.Color("#10b981")

	// Light status text
	colorRed300    = lipgloss.Color("#fca5a5")
	colorYellow300 = lipgloss.Color("#fde047")
	colorGreen300  = lipgloss.Color("#86efac")
	colorBlue300   = lipgloss.Color("#93c5fd")

	// Accents
	colorBlue400   = lipgloss.Color("#60a5fa")
	colorBlue500   = lipgloss.Color("#3b82f6")
	colorYellow400 = lipgloss.Color("#facc15")
	colorWhite     = lipgloss.Color("#ffffff")

	// Grays
	colorGray100 = lipgloss.Color("#f3f4f6")
	colorGray200 = lipgloss.Color("#e5e7eb")
	colorGray300 = lipgloss.Color("#d1d5db")
	colorGray400 = lipgloss.Color("#9ca3af")
	colorGray600 = lipgloss.Color("#4b5563")
	colorGray700 = lipgloss.Color("#374151")
	colorGray800 = lipgloss.Color("#1f2937")
	colorGray900 = lipgloss.Color("#111827")
)

// gradient is a from/to pair used for badges and progress fills.
type gradient struct {
	from lipgloss.Color
	to   lipgloss.Color
}

// statusGradient maps a status to its fill colors.
func statusGradient(s hours.Status) gradient {
	switch s {
	case hours.StatusExceeded:
		return gradient{colorRed500, colorRed600}
	case hours.StatusNear:
		return gradient{colorYellow500, colorOrange500}
	default:
		return gradient{colorGreen500, colorEmerald500}
	}
}

// statusTextColor is the lighter shade used for the status label.
func statusTextColor(s hours.Status) lipgloss.Color {
	switch s {
	case hours.StatusExceeded:
		return colorRed300
	case hours.StatusNear:
		return colorYellow300
	default:
		return colorGreen300
	}
}

// bandColors returns (border, label) colors for a histogram tile.
func bandColors(b hours.Band) (lipgloss.Color, lipgloss.Color) {
	switch b {
	case hours.BandUnder:
		return colorBlue500, colorBlue300
	case hours.BandMid:
		return colorGreen500, colorGreen300
	case hours.BandUpper:
		return colorYellow500, colorYellow300
	default:
		return colorRed500, colorRed300
	}
}

// ────────────────────────────────────────────────────────────
// Theme — surfaces and text that depend on dark mode
// ────────────────────────────────────────────────────────────

// Theme holds the styles that differ between dark and light mode.
type Theme struct {
	Dark bool

	frame      lipgloss.Style
	title      lipgloss.Style
	primary    lipgloss.Style
	secondary  lipgloss.Style
	accent     lipgloss.Style
	award      lipgloss.Style
	button     lipgloss.Style
	avatar     lipgloss.Style
	badgeText  lipgloss.Style
	trackColor lipgloss.Color
}

// NewTheme builds the dark or light theme.
func NewTheme(dark bool) Theme {
	var (
		text, dim, surface, border, track, avatarFg lipgloss.Color
	)
	if dark {
		text, dim = colorWhite, colorGray400
		surface, border = colorGray700, colorGray600
		track, avatarFg = colorGray700, colorGray300
	} else {
		text, dim = colorGray900, colorGray600
		surface, border = colorGray100, colorGray200
		track, avatarFg = colorGray200, colorGray600
	}

	return Theme{
		Dark: dark,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(text).
			Bold(true),
		primary: lipgloss.NewStyle().
			Foreground(text),
		secondary: lipgloss.NewStyle().
			Foreground(dim),
		accent: lipgloss.NewStyle().
			Foreground(colorBlue400),
		award: lipgloss.NewStyle().
			Foreground(colorYellow400),
		button: lipgloss.NewStyle().
			Background(surface).
			Foreground(text).
			Padding(0, 1),
		avatar: lipgloss.NewStyle().
			Foreground(avatarFg),
		badgeText: lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true),
		trackColor: track,
	}
}

// statusBadge renders the "{icon} {hours}h" pill on a card.
func (t Theme) statusBadge(c hours.Card) string {
	g := statusGradient(c.Status)
	return lipgloss.NewStyle().
		Background(g.from).
		Padding(0, 1).
		Render(t.badgeText.Background(g.from).Render(c.Status.Icon() + " " + hours.FormatBadge(c.Hours)))
}

// ────────────────────────────────────────────────────────────
// Program chrome (top bar, footer)
// ────────────────────────────────────────────────────────────

var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorGray800).
			Foreground(colorGray100).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue400)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorGray600)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorGray400)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray100).
			Background(colorGray800).
			Padding(0, 1)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed300).
			Background(colorGray800).
			Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorGray100).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorGray400)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorGray400).
			Padding(2, 4)
)
