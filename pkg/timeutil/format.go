// Package timeutil provides week arithmetic and time formatting for the
// hour tracker.
//
// Session timestamps are stored as Unix nanoseconds (int64). Weeks start
// on Monday at 00:00 in the caller's location.
package timeutil

import (
	"fmt"
	"time"
)

// WeekLayout is the layout accepted by ParseWeek and produced by FormatWeek.
const WeekLayout = "2006-01-02"

// FromNano converts a Unix nanosecond timestamp to time.Time.
func FromNano(ns int64) time.Time {
	return time.Unix(0, ns)
}

// ToNano converts a time.Time to Unix nanoseconds.
func ToNano(t time.Time) int64 {
	return t.UnixNano()
}

// StartOfWeek returns Monday 00:00 of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekRange returns [start, end) in Unix nanoseconds for the week containing t.
func WeekRange(t time.Time) (start, end int64) {
	s := StartOfWeek(t)
	e := s.AddDate(0, 0, 7)
	return s.UnixNano(), e.UnixNano()
}

// ShiftWeek moves a week start by n weeks (negative for earlier weeks).
func ShiftWeek(weekStart time.Time, n int) time.Time {
	return StartOfWeek(weekStart.AddDate(0, 0, 7*n))
}

// ParseWeek parses a YYYY-MM-DD date in loc and returns the start of its week.
// An empty string means the current week.
func ParseWeek(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	if s == "" {
		return StartOfWeek(time.Now().In(loc)), nil
	}
	t, err := time.ParseInLocation(WeekLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing week %q: %w", s, err)
	}
	return StartOfWeek(t), nil
}

// FormatWeek renders a week as "Mon 2006-01-02 – Sun 2006-01-08".
func FormatWeek(weekStart time.Time) string {
	end := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s – %s",
		weekStart.Format("Mon "+WeekLayout), end.Format("Mon "+WeekLayout))
}

// FormatTimestampFull formats a Unix nanosecond timestamp with date.
// Format: "2006-01-02 15:04"
func FormatTimestampFull(ns int64) string {
	return FromNano(ns).Format("2006-01-02 15:04")
}
