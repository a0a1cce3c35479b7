package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"2024-06-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-6-15", false},
		{"20240615", false},
		{"2024-06-15 ", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := Parse(tt.input)
		if ok != tt.ok {
			t.Errorf("Parse(%q): expected ok=%v, got %v", tt.input, tt.ok, ok)
		}
	}
}

func TestLooksLikeDate_InvalidCalendarDate(t *testing.T) {
	// The pattern accepts it, Parse does not
	if !LooksLikeDate("2024-02-30") {
		t.Error("expected pattern match for 2024-02-30")
	}
	if _, ok := Parse("2024-02-30"); ok {
		t.Error("expected 2024-02-30 to be rejected")
	}
}

func TestFormat_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, 3, 5, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 3, 5, 23, 59, 59, 0, time.Local)

	if Format(morning) != "2024-03-05" {
		t.Errorf("expected 2024-03-05, got %q", Format(morning))
	}
	if Format(morning) != Format(night) {
		t.Errorf("expected same string, got %q and %q", Format(morning), Format(night))
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	d := time.Date(1999, 12, 31, 0, 0, 0, 0, time.Local)
	parsed, ok := Parse(Format(d))
	if !ok {
		t.Fatal("expected round trip to parse")
	}
	if !parsed.Equal(d) {
		t.Errorf("expected %v, got %v", d, parsed)
	}
}

func TestMondayIndex(t *testing.T) {
	tests := []struct {
		day      time.Weekday
		expected int
	}{
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		if got := MondayIndex(tt.day); got != tt.expected {
			t.Errorf("MondayIndex(%v): expected %d, got %d", tt.day, tt.expected, got)
		}
	}
}

func TestAdjustedStart(t *testing.T) {
	tests := []struct {
		year     int
		expected int
	}{
		{2024, 0}, // Monday
		{2023, 6}, // Sunday
		{2000, 5}, // Saturday
		{2022, 5}, // Saturday
	}

	for _, tt := range tests {
		if got := AdjustedStart(tt.year); got != tt.expected {
			t.Errorf("AdjustedStart(%d): expected %d, got %d", tt.year, tt.expected, got)
		}
	}
}

func TestCellDate(t *testing.T) {
	// 2023 starts on a Sunday, so row 6 of column 0 is Jan 1
	got := CellDate(2023, 6, 0)
	if Format(got) != "2023-01-01" {
		t.Errorf("expected 2023-01-01, got %s", Format(got))
	}

	// Row 0 of column 0 is the Monday before, in 2022
	got = CellDate(2023, 0, 0)
	if Format(got) != "2022-12-26" {
		t.Errorf("expected 2022-12-26, got %s", Format(got))
	}
}

func TestGridPosition_MatchesCellDate(t *testing.T) {
	d := time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local)
	weekday, week := GridPosition(d)
	if weekday != 5 || week != 23 {
		t.Fatalf("expected (5, 23), got (%d, %d)", weekday, week)
	}
	if !IsSameDay(CellDate(2024, weekday, week), d) {
		t.Error("expected CellDate to invert GridPosition")
	}
}

func TestGridPosition_AllDaysFit(t *testing.T) {
	for _, year := range []int{2000, 2016, 2021, 2023, 2024} {
		d := YearStart(year)
		for d.Year() == year {
			weekday, week := GridPosition(d)
			if week >= WeeksPerYear || weekday >= DaysPerWeek {
				t.Fatalf("%s lands outside the grid at (%d, %d)", Format(d), weekday, week)
			}
			d = d.AddDate(0, 0, 1)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 15, 0, 0, 0, time.Local)
	b := time.Date(2024, 3, 1, 1, 0, 0, 0, time.Local)
	if got := DaysBetween(a, b); got != 60 {
		t.Errorf("expected 60, got %d", got)
	}
	if got := DaysBetween(b, a); got != -60 {
		t.Errorf("expected -60, got %d", got)
	}
}

func TestCompletedYears(t *testing.T) {
	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.Local)
	tests := []struct {
		at       time.Time
		expected int
	}{
		{time.Date(2024, 6, 14, 0, 0, 0, 0, time.Local), 23},
		{time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), 24},
		{time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local), 0},
	}

	for _, tt := range tests {
		if got := CompletedYears(birth, tt.at); got != tt.expected {
			t.Errorf("CompletedYears(%s): expected %d, got %d", Format(tt.at), tt.expected, got)
		}
	}
}

func TestGridPosition_LeapYearStartingSunday(t *testing.T) {
	// 2012 is a leap year starting on a Sunday: its last day has no column
	_, week := GridPosition(time.Date(2012, 12, 31, 0, 0, 0, 0, time.Local))
	if week != WeeksPerYear {
		t.Errorf("expected week %d, got %d", WeeksPerYear, week)
	}
}
