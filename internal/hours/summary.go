package hours

import "fmt"

// Band identifies one of the four histogram ranges.
type Band int

const (
	BandUnder Band = iota
	BandMid
	BandUpper
	BandOver
)

// Bucket returns the band h falls in.
func (l Limits) Bucket(h float64) Band {
	switch {
	case h < l.Low:
		return BandUnder
	case h < l.Near:
		return BandMid
	case h < l.Weekly:
		return BandUpper
	default:
		return BandOver
	}
}

// Buckets counts teachers per band.
type Buckets struct {
	Under int `json:"under"`
	Mid   int `json:"mid"`
	Upper int `json:"upper"`
	Over  int `json:"over"`
}

// Total returns the number of teachers counted. It always equals the
// roster size the buckets were built from.
func (b Buckets) Total() int {
	return b.Under + b.Mid + b.Upper + b.Over
}

// Count returns the count for one band.
func (b Buckets) Count(band Band) int {
	switch band {
	case BandUnder:
		return b.Under
	case BandMid:
		return b.Mid
	case BandUpper:
		return b.Upper
	default:
		return b.Over
	}
}

// BandCount is a labelled histogram cell.
type BandCount struct {
	Band  Band   `json:"-"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Bands returns the four cells in display order with labels derived from l.
func (b Buckets) Bands(l Limits) []BandCount {
	labels := [...]string{
		BandUnder: fmt.Sprintf("Under %sh", FormatLimit(l.Low)),
		BandMid:   fmt.Sprintf("%s-%sh", FormatLimit(l.Low), FormatLimit(l.Near)),
		BandUpper: fmt.Sprintf("%s-%sh", FormatLimit(l.Near), FormatLimit(l.Weekly)),
		BandOver:  fmt.Sprintf("Over %sh", FormatLimit(l.Weekly)),
	}
	cells := make([]BandCount, 0, len(labels))
	for band, label := range labels {
		cells = append(cells, BandCount{Band(band), label, b.Count(Band(band))})
	}
	return cells
}

// Buckets counts the roster into the four bands.
func (p Policy) Buckets(th TeacherHours) Buckets {
	var b Buckets
	for _, e := range th {
		switch p.Limits.Bucket(e.Hours) {
		case BandUnder:
			b.Under++
		case BandMid:
			b.Mid++
		case BandUpper:
			b.Upper++
		case BandOver:
			b.Over++
		}
	}
	return b
}

// Card is the per-teacher tile.
type Card struct {
	Name         string  `json:"name"`
	Hours        float64 `json:"hours"`
	Priority     bool    `json:"priority"`
	Status       Status  `json:"status"`
	Progress     float64 `json:"progress"`
	Caption      string  `json:"caption"`
	AboveAverage bool    `json:"above_average"`
}

// Summary is the full derived view model for one render.
type Summary struct {
	Total   float64      `json:"total"`
	Average float64      `json:"average"`
	Count   int          `json:"count"`
	Buckets Buckets      `json:"buckets"`
	Roster  TeacherHours `json:"roster"`
	Cards   []Card       `json:"cards"`
}

// Summarize derives the view model. It returns false for an empty mapping,
// in which case nothing should be rendered.
func (p Policy) Summarize(th TeacherHours) (Summary, bool) {
	if len(th) == 0 {
		return Summary{}, false
	}

	roster := p.Sort(th)
	total := roster.Total()
	avg := total / float64(len(roster))

	cards := make([]Card, 0, len(roster))
	for _, e := range roster {
		cards = append(cards, Card{
			Name:         e.Name,
			Hours:        e.Hours,
			Priority:     p.IsPriority(e.Name),
			Status:       p.Limits.StatusOf(e.Hours),
			Progress:     p.Limits.Progress(e.Hours),
			Caption:      p.Limits.Caption(e.Hours),
			AboveAverage: e.Hours > avg,
		})
	}

	return Summary{
		Total:   total,
		Average: avg,
		Count:   len(roster),
		Buckets: p.Buckets(roster),
		Roster:  roster,
		Cards:   cards,
	}, true
}
