// Package hours derives the weekly hour-tracker view model from a
// snapshot of accumulated teaching hours.
//
// Everything here is a pure function of the input snapshot and a Policy:
// roster ordering, aggregate statistics, the four-band histogram and the
// per-teacher status cards. Nothing is cached between calls.
package hours

import "strings"

// Default thresholds, in hours per week.
const (
	DefaultLowLimit    = 9.0
	DefaultNearLimit   = 12.0
	DefaultWeeklyLimit = 15.0
)

// DefaultPriorityNames are the first names that mark a teacher as priority.
var DefaultPriorityNames = []string{
	"Anisha", "Vivaran", "Mrigakshi", "Pranjali", "Atulan", "Cauveri", "Rohan",
}

// Limits holds the band boundaries. Bands are [0,Low), [Low,Near),
// [Near,Weekly) and [Weekly,inf).
type Limits struct {
	Low    float64 `json:"low"`
	Near   float64 `json:"near"`
	Weekly float64 `json:"weekly"`
}

// DefaultLimits returns the 9/12/15 hour bands.
func DefaultLimits() Limits {
	return Limits{
		Low:    DefaultLowLimit,
		Near:   DefaultNearLimit,
		Weekly: DefaultWeeklyLimit,
	}
}

// Policy bundles the thresholds with the priority allowlist.
type Policy struct {
	Limits        Limits   `json:"limits"`
	PriorityNames []string `json:"priority_names"`
}

// DefaultPolicy returns the stock limits and priority names.
func DefaultPolicy() Policy {
	names := make([]string, len(DefaultPriorityNames))
	copy(names, DefaultPriorityNames)
	return Policy{
		Limits:        DefaultLimits(),
		PriorityNames: names,
	}
}

// IsPriority reports whether name contains any priority name.
//
// Matching is a case-sensitive substring test with no word boundaries, so
// "Rohanna" matches "Rohan". Callers rely on this exact behavior.
func (p Policy) IsPriority(name string) bool {
	for _, pn := range p.PriorityNames {
		if pn != "" && strings.Contains(name, pn) {
			return true
		}
	}
	return false
}
