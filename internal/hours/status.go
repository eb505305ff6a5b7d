package hours

import (
	"math"
	"strconv"
)

// Status is the three-way classification of a teacher's weekly load.
type Status int

const (
	StatusAvailable Status = iota
	StatusNear
	StatusExceeded
)

// Label returns the text shown on a card.
func (s Status) Label() string {
	switch s {
	case StatusExceeded:
		return "Limit Exceeded"
	case StatusNear:
		return "Near Limit"
	default:
		return "Available"
	}
}

// Icon returns the glyph paired with the status. Near and Exceeded share
// the warning glyph; only color and label tell them apart.
func (s Status) Icon() string {
	switch s {
	case StatusExceeded, StatusNear:
		return "⚠"
	default:
		return "✔"
	}
}

func (s Status) String() string {
	switch s {
	case StatusExceeded:
		return "exceeded"
	case StatusNear:
		return "near"
	default:
		return "available"
	}
}

// MarshalText lets Status serialize as its short name in JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StatusOf classifies h against the Near and Weekly limits.
func (l Limits) StatusOf(h float64) Status {
	switch {
	case h >= l.Weekly:
		return StatusExceeded
	case h >= l.Near:
		return StatusNear
	default:
		return StatusAvailable
	}
}

// Progress returns h as a percentage of the weekly limit, clamped to 100.
func (l Limits) Progress(h float64) float64 {
	return math.Min(h/l.Weekly*100, 100)
}

// Caption returns the remaining-hours line for a card.
func (l Limits) Caption(h float64) string {
	if h >= l.Weekly {
		return "Over limit"
	}
	left := FormatHours(l.Weekly - h)
	if h >= l.Near {
		return left + "h left"
	}
	return left + "h available"
}

// roundHalfUp rounds x to places decimals with exact ties going up
// (11.25 -> 11.3), unlike strconv which rounds ties to even.
func roundHalfUp(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Floor(x*p+0.5) / p
}

// FormatHours renders an aggregate value with one decimal place.
func FormatHours(h float64) string {
	return strconv.FormatFloat(roundHalfUp(h, 1), 'f', 1, 64)
}

// FormatPercent renders a progress value as a whole percentage ("53%").
func FormatPercent(p float64) string {
	return strconv.FormatFloat(roundHalfUp(p, 0), 'f', 0, 64) + "%"
}

// FormatBadge renders raw hours the way the card badge shows them:
// shortest representation, no forced decimals ("10h", "12.5h").
func FormatBadge(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "h"
}

// FormatLimit renders a threshold for labels ("9", "12.5").
func FormatLimit(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
