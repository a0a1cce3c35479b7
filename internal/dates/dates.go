package dates

import (
	"regexp"
	"time"
)

// Layout is the canonical day-note date format
const Layout = "2006-01-02"

// WeeksPerYear is the number of week columns in a year grid
const WeeksPerYear = 53

// DaysPerWeek is the number of weekday rows in a year grid
const DaysPerWeek = 7

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LooksLikeDate reports whether s has the YYYY-MM-DD shape. It does not
// check that the date exists on the calendar.
func LooksLikeDate(s string) bool {
	return datePattern.MatchString(s)
}

// Parse parses a YYYY-MM-DD string as local midnight. Strings that match the
// pattern but name a day that does not exist (2024-02-30) are rejected.
func Parse(s string) (time.Time, bool) {
	if !LooksLikeDate(s) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format returns the zero-padded YYYY-MM-DD string built from t's own
// year, month and day. Two times on the same local day format identically.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Midnight truncates t to the start of its day in t's location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// YearStart returns January 1st of year at local midnight.
func YearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
}

// MondayIndex maps a weekday to Monday=0 .. Sunday=6.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// AdjustedStart is the Monday-first weekday index of January 1st of year.
func AdjustedStart(year int) int {
	return MondayIndex(YearStart(year).Weekday())
}

// DayOffset is the offset from January 1st of the cell at weekday row w and
// week column k, given the year's adjusted start.
func DayOffset(week, weekday, adjustedStart int) int {
	return week*DaysPerWeek + weekday - adjustedStart
}

// CellDate returns the candidate date for grid position (weekday, week) in
// year. The result may fall outside year; callers treat that as padding.
func CellDate(year, weekday, week int) time.Time {
	offset := DayOffset(week, weekday, AdjustedStart(year))
	return time.Date(year, time.January, 1+offset, 0, 0, 0, 0, time.Local)
}

// GridPosition returns the (weekday, week) grid position of d within its
// own year. December 31st of a leap year that starts on a Sunday lands on
// week WeeksPerYear, one column past the grid.
func GridPosition(d time.Time) (weekday, week int) {
	offset := d.YearDay() - 1 + AdjustedStart(d.Year())
	return offset % DaysPerWeek, offset / DaysPerWeek
}

// DaysBetween counts whole calendar days from a to b. Both are truncated to
// midnight first, so DST shifts do not lose a day.
func DaysBetween(a, b time.Time) int {
	a = Midnight(a)
	b = Midnight(b)
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// CompletedYears returns the age in whole years on day at, for someone
// born on birth. Negative spans return 0.
func CompletedYears(birth, at time.Time) int {
	if at.Before(birth) {
		return 0
	}
	years := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		years--
	}
	return years
}

// IsSameDay reports whether d1 and d2 fall on the same calendar day.
func IsSameDay(d1, d2 time.Time) bool {
	return d1.Year() == d2.Year() && d1.Month() == d2.Month() && d1.Day() == d2.Day()
}
