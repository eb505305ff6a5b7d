package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/hourtracker/internal/database"
	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
	"github.com/Mr-Dark-debug/hourtracker/pkg/jsonutil"
	"github.com/Mr-Dark-debug/hourtracker/pkg/timeutil"
)

// sessionTimeLayouts are accepted by --at, in order.
var sessionTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	timeutil.WeekLayout,
}

func parseSessionTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range sessionTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (use YYYY-MM-DD HH:MM or RFC3339)", s)
}

func newLogCmd(a *app) *cobra.Command {
	var (
		teacher string
		subject string
		at      string
		note    string
		hrs     float64
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record one teaching session",
		Example: `  hourtracker log --teacher Anisha --hours 1.5 --subject Physics
  hourtracker log --teacher Rohan --hours 2 --at "2026-10-14 09:00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseSessionTime(at)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			sess := &database.Session{
				Teacher:   teacher,
				Subject:   subject,
				StartTime: timeutil.ToNano(start),
				Hours:     hrs,
			}
			if note != "" {
				sess.Note = &note
			}
			if err := store.InsertSession(sess); err != nil {
				return err
			}

			a.log.Info("session recorded",
				zap.String("session_id", sess.SessionID),
				zap.String("teacher", teacher),
				zap.Float64("hours", hrs))
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %s on %s (%s)\n",
				hours.FormatBadge(hrs), teacher, timeutil.FormatTimestampFull(sess.StartTime), sess.SessionID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&teacher, "teacher", "t", "", "teacher name (required)")
	cmd.Flags().Float64VarP(&hrs, "hours", "H", 0, "hours taught (required)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "subject or class")
	cmd.Flags().StringVar(&at, "at", "", "session start (default now)")
	cmd.Flags().StringVar(&note, "note", "", "free-form note")
	_ = cmd.MarkFlagRequired("teacher")
	_ = cmd.MarkFlagRequired("hours")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import sessions from JSON",
		Long: `Import sessions from a JSON file ("-" for stdin).

The file is either an array of sessions:

  [{"teacher": "Anisha", "hours": 1.5, "start_time": 1760000000000000000}]

or an object of weekly totals, recorded as one session per teacher at the
start of --week:

  {"Anisha": 10, "Rohan": 16}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := timeutil.ParseWeek(week, time.Local)
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			sessions, err := decodeSessions(data, weekStart)
			if err != nil {
				return err
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.BatchInsertSessions(sessions); err != nil {
				return err
			}

			a.log.Info("sessions imported", zap.String("file", args[0]), zap.Int("count", len(sessions)))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sessions\n", len(sessions))
			return nil
		},
	}

	cmd.Flags().StringVarP(&week, "week", "w", "", "week for weekly totals, any date in it (default current week)")
	return cmd
}

// decodeSessions accepts either a session array or a teacher->hours object.
func decodeSessions(data []byte, weekStart time.Time) ([]*database.Session, error) {
	if jsonutil.IsObject(data) {
		th, err := jsonutil.DecodeOrderedHours(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		sessions := make([]*database.Session, 0, len(th))
		for _, e := range th {
			sessions = append(sessions, &database.Session{
				Teacher:   e.Name,
				Subject:   "import",
				StartTime: timeutil.ToNano(weekStart),
				Hours:     e.Hours,
			})
		}
		return sessions, nil
	}

	var sessions []*database.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decoding sessions: %w", err)
	}
	for i, s := range sessions {
		if s == nil {
			return nil, fmt.Errorf("decoding sessions: entry %d is null", i)
		}
		if s.StartTime == 0 {
			s.StartTime = timeutil.ToNano(weekStart)
		}
	}
	return sessions, nil
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}
