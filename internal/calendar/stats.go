package calendar

import (
	"time"

	"daytrace/internal/dates"
	"daytrace/internal/settings"
)

// Stats summarizes a life calendar for the header line
type Stats struct {
	Notes          int
	LifeExpectancy int
	LivedDays      int
	TotalDays      int
	RemainingDays  int
	Age            int
	Percent        float64
}

// ComputeStats counts days between birth, today and the end of the life
// expectancy horizon. Lived days are clamped to [0, TotalDays].
func ComputeStats(p Params, noteCount int) Stats {
	birth := dates.Midnight(p.Birth)
	today := dates.Midnight(p.Today)
	end := birth.AddDate(p.LifeExpectancy, 0, 0)

	total := dates.DaysBetween(birth, end)
	lived := min(max(dates.DaysBetween(birth, today), 0), total)

	s := Stats{
		Notes:          noteCount,
		LifeExpectancy: p.LifeExpectancy,
		LivedDays:      lived,
		TotalDays:      total,
		RemainingDays:  total - lived,
		Age:            dates.CompletedYears(birth, today),
	}
	if total > 0 {
		s.Percent = float64(lived) / float64(total) * 100
	}
	return s
}

// TodayBlock returns the index of the block holding today, clamped to the
// rendered range. Blocks run per calendar year, so this can be one more
// than Stats.Age before the birthday.
func TodayBlock(p Params) int {
	age := p.Today.Year() - p.Birth.Year()
	return min(max(age, 0), max(p.LifeExpectancy, 0))
}

// MonthLabel marks the week column where a month begins
type MonthLabel struct {
	Month time.Month
	Week  int
}

// Name returns the three-letter month abbreviation.
func (l MonthLabel) Name() string {
	return l.Month.String()[:3]
}

// MonthLabels returns the starting week column of each month of year.
func MonthLabels(year int) []MonthLabel {
	labels := make([]MonthLabel, 0, 12)
	for m := time.January; m <= time.December; m++ {
		_, week := dates.GridPosition(time.Date(year, m, 1, 0, 0, 0, 0, time.Local))
		labels = append(labels, MonthLabel{Month: m, Week: week})
	}
	return labels
}

// LegendEntry is one palette entry shown in the legend
type LegendEntry struct {
	Name  string
	Color string
}

// Legend lists the palette with the default entry first.
func Legend(palette map[string]string) []LegendEntry {
	keys := settings.PaletteKeys(palette)
	entries := make([]LegendEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, LegendEntry{Name: k, Color: palette[k]})
	}
	return entries
}
