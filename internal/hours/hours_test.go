package hours

import (
	"math"
	"testing"
)

func sample() TeacherHours {
	return TeacherHours{
		{"Anisha", 10},
		{"Rohan", 16},
		{"Zara", 8},
		{"Maya", 13},
	}
}

func names(th TeacherHours) []string {
	out := make([]string, len(th))
	for i, e := range th {
		out[i] = e.Name
	}
	return out
}

func TestSummarizeExample(t *testing.T) {
	sum, ok := DefaultPolicy().Summarize(sample())
	if !ok {
		t.Fatal("expected a summary for non-empty input")
	}

	if sum.Total != 47 {
		t.Errorf("expected total=47, got %v", sum.Total)
	}
	if sum.Average != 11.75 {
		t.Errorf("expected average=11.75, got %v", sum.Average)
	}
	if sum.Count != 4 {
		t.Errorf("expected count=4, got %d", sum.Count)
	}
	if FormatHours(sum.Total) != "47.0" {
		t.Errorf("expected formatted total 47.0, got %s", FormatHours(sum.Total))
	}

	want := Buckets{Under: 1, Mid: 1, Upper: 1, Over: 1}
	if sum.Buckets != want {
		t.Errorf("expected buckets %+v, got %+v", want, sum.Buckets)
	}

	order := names(sum.Roster)
	wantOrder := []string{"Rohan", "Anisha", "Maya", "Zara"}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Fatalf("expected order %v, got %v", wantOrder, order)
		}
	}

	if !sum.Cards[0].Priority || !sum.Cards[1].Priority {
		t.Error("expected Rohan and Anisha to be priority")
	}
	if sum.Cards[2].Priority || sum.Cards[3].Priority {
		t.Error("expected Maya and Zara to be non-priority")
	}
	if !sum.Cards[0].AboveAverage || !sum.Cards[2].AboveAverage {
		t.Error("expected Rohan and Maya above average")
	}
	if sum.Cards[1].AboveAverage || sum.Cards[3].AboveAverage {
		t.Error("expected Anisha and Zara not above average")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, ok := DefaultPolicy().Summarize(nil); ok {
		t.Error("expected no summary for nil input")
	}
	if _, ok := DefaultPolicy().Summarize(TeacherHours{}); ok {
		t.Error("expected no summary for empty input")
	}
}

func TestStatusAtBoundaries(t *testing.T) {
	l := DefaultLimits()
	tests := []struct {
		hours    float64
		status   Status
		label    string
		progress float64
		caption  string
	}{
		{0, StatusAvailable, "Available", 0, "15.0h available"},
		{8.5, StatusAvailable, "Available", 8.5 / 15 * 100, "6.5h available"},
		{11.99, StatusAvailable, "Available", 11.99 / 15 * 100, "3.0h available"},
		{12, StatusNear, "Near Limit", 80, "3.0h left"},
		{14.5, StatusNear, "Near Limit", 14.5 / 15 * 100, "0.5h left"},
		{15, StatusExceeded, "Limit Exceeded", 100, "Over limit"},
		{22, StatusExceeded, "Limit Exceeded", 100, "Over limit"},
	}

	for _, tt := range tests {
		s := l.StatusOf(tt.hours)
		if s != tt.status {
			t.Errorf("StatusOf(%v) = %v, want %v", tt.hours, s, tt.status)
		}
		if s.Label() != tt.label {
			t.Errorf("StatusOf(%v).Label() = %q, want %q", tt.hours, s.Label(), tt.label)
		}
		if p := l.Progress(tt.hours); math.Abs(p-tt.progress) > 1e-9 {
			t.Errorf("Progress(%v) = %v, want %v", tt.hours, p, tt.progress)
		}
		if c := l.Caption(tt.hours); c != tt.caption {
			t.Errorf("Caption(%v) = %q, want %q", tt.hours, c, tt.caption)
		}
	}
}

func TestStatusIsTotal(t *testing.T) {
	l := DefaultLimits()
	for h := 0.0; h <= 30; h += 0.25 {
		s := l.StatusOf(h)
		matches := 0
		if h >= 15 && s == StatusExceeded {
			matches++
		}
		if h >= 12 && h < 15 && s == StatusNear {
			matches++
		}
		if h < 12 && s == StatusAvailable {
			matches++
		}
		if matches != 1 {
			t.Fatalf("StatusOf(%v) = %v does not match exactly one band", h, s)
		}

		p := l.Progress(h)
		if p < 0 || p > 100 {
			t.Fatalf("Progress(%v) = %v out of range", h, p)
		}
		if h >= 15 && p != 100 {
			t.Fatalf("Progress(%v) = %v, want 100", h, p)
		}
	}
}

func TestWarningIconShared(t *testing.T) {
	if StatusNear.Icon() != StatusExceeded.Icon() {
		t.Error("expected Near and Exceeded to share an icon")
	}
	if StatusAvailable.Icon() == StatusNear.Icon() {
		t.Error("expected Available to use a different icon")
	}
}

func TestBucketsPartitionRoster(t *testing.T) {
	p := DefaultPolicy()
	th := TeacherHours{}
	for i := 0; i < 80; i++ {
		th = append(th, Entry{Name: string(rune('A'+i%26)) + string(rune('a'+i/26)), Hours: float64(i) * 0.3})
	}
	b := p.Buckets(th)
	if b.Total() != len(th) {
		t.Errorf("expected bucket total %d, got %d", len(th), b.Total())
	}
}

func TestBucketEdges(t *testing.T) {
	l := DefaultLimits()
	tests := []struct {
		hours float64
		band  Band
	}{
		{0, BandUnder},
		{8.99, BandUnder},
		{9, BandMid},
		{11.99, BandMid},
		{12, BandUpper},
		{14.99, BandUpper},
		{15, BandOver},
		{40, BandOver},
	}
	for _, tt := range tests {
		if got := l.Bucket(tt.hours); got != tt.band {
			t.Errorf("Bucket(%v) = %v, want %v", tt.hours, got, tt.band)
		}
	}
}

func TestBandLabels(t *testing.T) {
	bands := Buckets{Under: 1, Mid: 2, Upper: 3, Over: 4}.Bands(DefaultLimits())
	want := []string{"Under 9h", "9-12h", "12-15h", "Over 15h"}
	for i, b := range bands {
		if b.Label != want[i] {
			t.Errorf("band %d label = %q, want %q", i, b.Label, want[i])
		}
		if b.Count != i+1 {
			t.Errorf("band %d count = %d, want %d", i, b.Count, i+1)
		}
	}
}

func TestSortPriorityFirstRegardlessOfHours(t *testing.T) {
	p := DefaultPolicy()
	th := TeacherHours{
		{"Zed", 30},
		{"Cauveri S", 1},
		{"Yuri", 20},
		{"Pranjali", 2},
	}
	got := names(p.Sort(th))
	want := []string{"Pranjali", "Cauveri S", "Zed", "Yuri"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortStableForEqualHours(t *testing.T) {
	p := DefaultPolicy()
	th := TeacherHours{
		{"Carl", 10},
		{"Bea", 10},
		{"Ada", 10},
		{"Dan", 12},
	}
	got := names(p.Sort(th))
	want := []string{"Dan", "Carl", "Bea", "Ada"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	th := sample()
	DefaultPolicy().Sort(th)
	if th[0].Name != "Anisha" || th[3].Name != "Maya" {
		t.Errorf("input was reordered: %v", names(th))
	}
}

func TestIsPrioritySubstring(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name string
		want bool
	}{
		{"Anisha", true},
		{"Dr. Anisha Rao", true},
		{"Rohanna", true}, // substring match, no word boundary
		{"rohan", false},  // case-sensitive
		{"Maya", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := p.IsPriority(tt.name); got != tt.want {
			t.Errorf("IsPriority(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCustomLimits(t *testing.T) {
	p := Policy{Limits: Limits{Low: 4, Near: 8, Weekly: 10}}
	sum, ok := p.Summarize(TeacherHours{{"A", 3}, {"B", 5}, {"C", 9}, {"D", 10}})
	if !ok {
		t.Fatal("expected summary")
	}
	if sum.Buckets != (Buckets{Under: 1, Mid: 1, Upper: 1, Over: 1}) {
		t.Errorf("unexpected buckets %+v", sum.Buckets)
	}
	if sum.Cards[0].Name != "D" || sum.Cards[0].Caption != "Over limit" {
		t.Errorf("unexpected first card %+v", sum.Cards[0])
	}
	if c := p.Limits.Caption(9); c != "1.0h left" {
		t.Errorf("Caption(9) = %q", c)
	}
}

func TestTeacherHoursSetAndLookup(t *testing.T) {
	var th TeacherHours
	th = th.Set("Ada", 3)
	th = th.Set("Bea", 4)
	th = th.Set("Ada", 7)
	if th.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", th.Len())
	}
	if h, ok := th.Lookup("Ada"); !ok || h != 7 {
		t.Errorf("Lookup(Ada) = %v, %v", h, ok)
	}
	if _, ok := th.Lookup("Cy"); ok {
		t.Error("expected Cy to be missing")
	}
	if th[0].Name != "Ada" {
		t.Error("Set should keep original position")
	}
}

func TestFormatBadge(t *testing.T) {
	if got := FormatBadge(10); got != "10h" {
		t.Errorf("FormatBadge(10) = %q", got)
	}
	if got := FormatBadge(12.5); got != "12.5h" {
		t.Errorf("FormatBadge(12.5) = %q", got)
	}
}

func TestDisplayRoundingTiesGoUp(t *testing.T) {
	l := DefaultLimits()
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"FormatHours(11.25)", FormatHours(11.25), "11.3"},
		{"FormatHours(11.75)", FormatHours(11.75), "11.8"},
		{"FormatHours(47)", FormatHours(47), "47.0"},
		{"Caption(14.75)", l.Caption(14.75), "0.3h left"},
		{"Caption(3.25)", l.Caption(3.25), "11.8h available"},
		{"Progress(1.875)", FormatPercent(l.Progress(1.875)), "13%"},
		{"Progress(8)", FormatPercent(l.Progress(8)), "53%"},
		{"Progress(20)", FormatPercent(l.Progress(20)), "100%"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
		}
	}

	sum, _ := DefaultPolicy().Summarize(TeacherHours{{Name: "Ada", Hours: 10}, {Name: "Bea", Hours: 12.5}})
	if got := FormatHours(sum.Average); got != "11.3" {
		t.Errorf("average of 10 and 12.5 = %q, want 11.3", got)
	}
}

func TestBucketsCountMatchesBands(t *testing.T) {
	l := DefaultLimits()
	b := DefaultPolicy().Buckets(TeacherHours{
		{Name: "A", Hours: 1}, {Name: "B", Hours: 2}, {Name: "C", Hours: 13}, {Name: "D", Hours: 20},
	})
	for _, bc := range b.Bands(l) {
		if bc.Count != b.Count(bc.Band) {
			t.Errorf("band %q: Bands count %d, Count %d", bc.Label, bc.Count, b.Count(bc.Band))
		}
	}
	if b.Count(BandUnder) != 2 || b.Count(BandMid) != 0 || b.Count(BandUpper) != 1 || b.Count(BandOver) != 1 {
		t.Errorf("unexpected buckets %+v", b)
	}
}
