// Package calendar computes the life calendar grid. It has no rendering
// dependencies: the TUI and CLI turn the cells into output.
package calendar

import (
	"time"

	"daytrace/internal/dates"
	"daytrace/internal/notes"
	"daytrace/internal/settings"
)

// Kind classifies a grid cell. Every cell has exactly one kind.
type Kind int

const (
	Empty Kind = iota
	BeforeBirth
	Future
	NoNote
	HasNote
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case BeforeBirth:
		return "before-birth"
	case Future:
		return "future"
	case NoNote:
		return "no-note"
	case HasNote:
		return "has-note"
	default:
		return "unknown"
	}
}

// Clickable reports whether activating a cell of this kind does anything:
// HasNote opens the note and NoNote creates one.
func (k Kind) Clickable() bool {
	return k == NoNote || k == HasNote
}

// Cell is one day slot of a year block
type Cell struct {
	Date time.Time
	Key  string
	Kind Kind

	// Overlays, only ever set on NoNote/HasNote cells
	Today   bool
	Special bool

	Color  string
	Record *notes.DayRecord
}

// YearBlock is the grid for one year of life: 7 weekday rows, Monday
// first, by 53 week columns.
type YearBlock struct {
	Age   int
	Year  int
	Cells [dates.DaysPerWeek][dates.WeeksPerYear]Cell
}

// Find returns the grid position of the cell holding date.
func (b YearBlock) Find(date time.Time) (weekday, week int, ok bool) {
	if date.Year() != b.Year {
		return 0, 0, false
	}
	weekday, week = dates.GridPosition(date)
	if week >= dates.WeeksPerYear {
		return 0, 0, false
	}
	return weekday, week, true
}

// Lookup resolves a canonical date string to its day record
type Lookup interface {
	Get(date string) (notes.DayRecord, bool)
}

// Params are the renderer inputs besides the day index.
type Params struct {
	Birth          time.Time
	LifeExpectancy int
	Today          time.Time
	Palette        map[string]string
}

// ParamsFrom builds renderer params from settings and the current time.
func ParamsFrom(s settings.Settings, now time.Time) Params {
	return Params{
		Birth:          s.Birth(),
		LifeExpectancy: s.LifeExpectancy,
		Today:          dates.Midnight(now),
		Palette:        s.Palette,
	}
}

// Build returns one block per age from 0 through LifeExpectancy inclusive.
func Build(p Params, days Lookup) []YearBlock {
	if p.LifeExpectancy < 0 {
		return nil
	}
	blocks := make([]YearBlock, 0, p.LifeExpectancy+1)
	for age := 0; age <= p.LifeExpectancy; age++ {
		blocks = append(blocks, BuildYear(p, days, age))
	}
	return blocks
}

// BuildYear computes the block for a single age.
func BuildYear(p Params, days Lookup, age int) YearBlock {
	birth := dates.Midnight(p.Birth)
	today := dates.Midnight(p.Today)
	todayKey := dates.Format(today)

	year := birth.Year() + age
	block := YearBlock{Age: age, Year: year}

	for w := 0; w < dates.DaysPerWeek; w++ {
		for k := 0; k < dates.WeeksPerYear; k++ {
			d := dates.CellDate(year, w, k)
			cell := Cell{Date: d, Key: dates.Format(d)}

			switch {
			case d.Year() != year:
				cell.Kind = Empty
			case d.Before(birth):
				cell.Kind = BeforeBirth
			case d.After(today):
				cell.Kind = Future
			default:
				classify(&cell, days, p.Palette)
				cell.Today = cell.Key == todayKey
			}

			block.Cells[w][k] = cell
		}
	}
	return block
}

func classify(cell *Cell, days Lookup, palette map[string]string) {
	if days == nil {
		cell.Kind = NoNote
		return
	}
	record, ok := days.Get(cell.Key)
	if !ok {
		cell.Kind = NoNote
		return
	}
	cell.Kind = HasNote
	cell.Special = record.Special
	cell.Color = ResolveColor(record, palette)
	cell.Record = &record
}

// ResolveColor picks the display color of a day: the explicit color, then
// the palette entry for its color key, then the default palette entry.
func ResolveColor(record notes.DayRecord, palette map[string]string) string {
	if record.Color != "" {
		return record.Color
	}
	if record.ColorKey != "" {
		if c, ok := palette[record.ColorKey]; ok {
			return c
		}
	}
	return palette[settings.DefaultColorKey]
}
