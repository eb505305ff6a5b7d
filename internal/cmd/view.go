package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
	"github.com/Mr-Dark-debug/hourtracker/internal/tui"
	"github.com/Mr-Dark-debug/hourtracker/pkg/jsonutil"
	"github.com/Mr-Dark-debug/hourtracker/pkg/timeutil"
)

// snapshotFlags are shared by summary, render and tui.
type snapshotFlags struct {
	week string
	file string
}

func (f *snapshotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.week, "week", "w", "", "any date in the week to show, YYYY-MM-DD (default current week)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `read a {"name": hours} JSON snapshot instead of the database ("-" for stdin)`)
}

// load returns the week start and the snapshot for it.
func (f *snapshotFlags) load(cmd *cobra.Command, a *app) (time.Time, hours.TeacherHours, error) {
	weekStart, err := timeutil.ParseWeek(f.week, time.Local)
	if err != nil {
		return time.Time{}, nil, err
	}

	if f.file != "" {
		data, err := readInput(cmd, f.file)
		if err != nil {
			return time.Time{}, nil, err
		}
		th, err := jsonutil.DecodeOrderedHours(bytes.NewReader(data))
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("reading snapshot %s: %w", f.file, err)
		}
		return weekStart, th, nil
	}

	store, err := a.openStore()
	if err != nil {
		return time.Time{}, nil, err
	}
	defer store.Close()

	th, err := store.WeeklyHours(timeutil.ToNano(weekStart))
	if err != nil {
		return time.Time{}, nil, err
	}
	a.log.Debug("weekly hours loaded",
		zap.String("week", weekStart.Format(timeutil.WeekLayout)),
		zap.Int("teachers", len(th)))
	return weekStart, th, nil
}

// ────────────────────────────────────────────────────────────
// summary
// ────────────────────────────────────────────────────────────

type summaryOutput struct {
	Week    string         `json:"week"`
	Limits  hours.Limits   `json:"limits"`
	Summary *hours.Summary `json:"summary"`
}

func newSummaryCmd(a *app) *cobra.Command {
	var (
		snap   snapshotFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print weekly totals, bands and per-teacher status",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, th, err := snap.load(cmd, a)
			if err != nil {
				return err
			}
			policy := a.cfg.Policy()
			sum, ok := policy.Summarize(th)

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				res := summaryOutput{Week: weekStart.Format(timeutil.WeekLayout), Limits: policy.Limits}
				if ok {
					res.Summary = &sum
				}
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding summary: %w", err)
				}
				fmt.Fprintln(out, string(b))
			case "text":
				if !ok {
					fmt.Fprintf(out, "No teaching hours recorded for %s.\n", timeutil.FormatWeek(weekStart))
					return nil
				}
				fmt.Fprint(out, formatSummary(policy, weekStart, sum))
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
			return nil
		},
	}

	snap.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}

// formatSummary renders the plain-text report.
func formatSummary(policy hours.Policy, weekStart time.Time, sum hours.Summary) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Week:            %s\n", timeutil.FormatWeek(weekStart))
	fmt.Fprintf(&buf, "Weekly limit:    %s hours per teacher\n", hours.FormatLimit(policy.Limits.Weekly))
	fmt.Fprintf(&buf, "Total hours:     %s\n", hours.FormatHours(sum.Total))
	fmt.Fprintf(&buf, "Avg per teacher: %s\n", hours.FormatHours(sum.Average))
	fmt.Fprintf(&buf, "Active teachers: %d\n", sum.Count)
	buf.WriteString("\n")

	for _, bc := range sum.Buckets.Bands(policy.Limits) {
		fmt.Fprintf(&buf, "  %-10s %d\n", bc.Label, bc.Count)
	}
	buf.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Teacher", "Hours", "Progress", "Status", "Remaining", "")
	for _, c := range sum.Cards {
		marks := ""
		if c.Priority {
			marks += "★"
		}
		if c.AboveAverage {
			marks += "↗"
		}
		t.Row(
			c.Name,
			hours.FormatBadge(c.Hours),
			hours.FormatPercent(c.Progress),
			c.Status.Label(),
			c.Caption,
			marks,
		)
	}
	buf.WriteString(t.String())
	buf.WriteString("\n")
	return buf.String()
}

// ────────────────────────────────────────────────────────────
// render
// ────────────────────────────────────────────────────────────

type displayFlags struct {
	expanded bool
	theme    string
	width    int
}

func (d *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&d.expanded, "expanded", "e", false, "show the per-teacher card grid (default from display.expanded)")
	cmd.Flags().StringVar(&d.theme, "theme", "", "dark or light (default from display.dark_mode)")
	cmd.Flags().IntVar(&d.width, "width", 0, "render width in columns (default from display.width)")
}

// resolve merges flags over config. Only flags the user set win.
func (d *displayFlags) resolve(cmd *cobra.Command, a *app) (tui.Options, error) {
	opts := tui.Options{
		DarkMode: a.cfg.Display.DarkMode,
		Expanded: a.cfg.Display.Expanded,
		Width:    a.cfg.Display.Width,
	}
	if cmd.Flags().Changed("expanded") {
		opts.Expanded = d.expanded
	}
	if cmd.Flags().Changed("width") {
		opts.Width = d.width
	}
	switch d.theme {
	case "":
	case "dark":
		opts.DarkMode = true
	case "light":
		opts.DarkMode = false
	default:
		return opts, fmt.Errorf("unknown theme %q (want dark or light)", d.theme)
	}
	return opts, nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		snap snapshotFlags
		disp displayFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the hour tracker card once",
		Long: `Print the hour tracker card once and exit.

Nothing is printed when no hours are recorded for the week.`,
		Example: `  hourtracker render --expanded
  echo '{"Anisha": 10, "Rohan": 16}' | hourtracker render -f - --theme light`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := disp.resolve(cmd, a)
			if err != nil {
				return err
			}
			_, th, err := snap.load(cmd, a)
			if err != nil {
				return err
			}

			out := tui.Render(a.cfg.Policy(), th, opts)
			if out == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	snap.register(cmd)
	disp.register(cmd)
	return cmd
}

// ────────────────────────────────────────────────────────────
// tui
// ────────────────────────────────────────────────────────────

func newTUICmd(a *app) *cobra.Command {
	var (
		snap snapshotFlags
		disp displayFlags
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive hour tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := disp.resolve(cmd, a)
			if err != nil {
				return err
			}

			var model tui.Model
			if snap.file != "" {
				_, th, err := snap.load(cmd, a)
				if err != nil {
					return err
				}
				model = tui.NewModel(a.cfg.Policy(), th, opts.DarkMode)
			} else {
				weekStart, err := timeutil.ParseWeek(snap.week, time.Local)
				if err != nil {
					return err
				}
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
				model = tui.NewStoreModel(a.cfg.Policy(), store, weekStart, opts.DarkMode)
			}
			model = model.WithExpanded(opts.Expanded)

			a.log.Debug("starting tui")
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	snap.register(cmd)
	disp.register(cmd)
	return cmd
}
