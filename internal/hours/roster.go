package hours

import "sort"

// Entry is one teacher's accumulated hours for the week.
type Entry struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// TeacherHours maps teacher name to weekly hours. It is a slice rather than
// a map because source order is the final tiebreak when sorting.
type TeacherHours []Entry

// Len returns the number of teachers.
func (th TeacherHours) Len() int { return len(th) }

// Lookup returns the hours recorded for name.
func (th TeacherHours) Lookup(name string) (float64, bool) {
	for _, e := range th {
		if e.Name == name {
			return e.Hours, true
		}
	}
	return 0, false
}

// Set replaces the hours for name, or appends a new entry.
func (th TeacherHours) Set(name string, h float64) TeacherHours {
	for i := range th {
		if th[i].Name == name {
			th[i].Hours = h
			return th
		}
	}
	return append(th, Entry{Name: name, Hours: h})
}

// Total sums every entry.
func (th TeacherHours) Total() float64 {
	var total float64
	for _, e := range th {
		total += e.Hours
	}
	return total
}

// Sort returns a copy of th ordered priority-first, then by descending
// hours. Entries that compare equal keep their source order.
func (p Policy) Sort(th TeacherHours) TeacherHours {
	out := make(TeacherHours, len(th))
	copy(out, th)

	priority := make(map[string]bool, len(out))
	for _, e := range out {
		priority[e.Name] = p.IsPriority(e.Name)
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := priority[out[i].Name], priority[out[j].Name]
		if pi != pj {
			return pi
		}
		return out[i].Hours > out[j].Hours
	})
	return out
}
