package lifecal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daytrace/internal/calendar"
	"daytrace/internal/dates"
	"daytrace/internal/tui/theme"
)

const cellWidth = 2

var weekdayLabels = [dates.DaysPerWeek]string{"Mo", "", "We", "", "Fr", "", "Su"}

// View renders the calendar view
func (m Model) View() string {
	if m.jumping {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.jump.view())
	}

	var sb strings.Builder

	sb.WriteString(m.renderStats())
	sb.WriteString("\n")
	sb.WriteString(m.renderLegend())
	sb.WriteString("\n")
	sb.WriteString(m.renderDetail())
	sb.WriteString("\n\n")

	end := min(m.top+m.visibleBlocks(), len(m.blocks))
	for i := m.top; i < end; i++ {
		sb.WriteString(m.renderBlock(m.blocks[i]))
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) renderStats() string {
	s := m.stats
	title := theme.Title.Render(" Life calendar")
	parts := []string{
		fmt.Sprintf("%d notes", s.Notes),
		fmt.Sprintf("%d years", s.LifeExpectancy),
		fmt.Sprintf("age %d", s.Age),
		fmt.Sprintf("%d days lived", s.LivedDays),
		fmt.Sprintf("%d left", s.RemainingDays),
		fmt.Sprintf("%.1f%%", s.Percent),
	}
	return title + "  " + theme.Muted.Render(strings.Join(parts, " · "))
}

func (m Model) renderLegend() string {
	items := make([]string, 0, len(m.legend))
	for _, e := range m.legend {
		items = append(items, theme.Swatch(e.Color).Render("■")+" "+e.Name)
	}
	return " " + strings.Join(items, "  ")
}

func (m Model) renderDetail() string {
	d := m.detail
	date := m.cursor.Format("Mon, Jan 2 2006")
	header := theme.Subtitle.Render(" " + date)
	if !d.onGrid {
		return header
	}

	var desc string
	switch d.cell.Kind {
	case calendar.HasNote:
		title := d.summary.Title
		if title == "" {
			title = d.cell.Record.File.Path
		}
		desc = theme.Swatch(d.cell.Color).Render("■") + " " + title
		if rec := d.cell.Record; rec.HasColorMetadata() {
			tag := rec.ColorKey
			if tag == "" {
				tag = rec.Color
			}
			desc += theme.Muted.Render(" [" + tag + "]")
		}
		if d.summary.Preview != "" {
			desc += theme.Muted.Render("  " + d.summary.Preview)
		}
	case calendar.NoNote:
		desc = theme.Muted.Render("no note, enter to create")
	case calendar.Future:
		desc = theme.Muted.Render("future")
	case calendar.BeforeBirth:
		desc = theme.Muted.Render("before birth")
	}
	return header + "  " + desc
}

func (m Model) renderBlock(b calendar.YearBlock) string {
	var sb strings.Builder

	sb.WriteString(theme.YearLabel.Render(fmt.Sprintf(" %d", b.Year)))
	sb.WriteString("  ")
	sb.WriteString(theme.AgeLabel.Render(fmt.Sprintf("%d 岁", b.Age)))
	sb.WriteString("\n")

	sb.WriteString(theme.MonthLabel.Render(monthRow(b.Year)))
	sb.WriteString("\n")

	for w := 0; w < dates.DaysPerWeek; w++ {
		sb.WriteString(theme.DayLabel.Render(fmt.Sprintf(" %-3s", weekdayLabels[w])))
		for k := 0; k < dates.WeeksPerYear; k++ {
			c := b.Cells[w][k]
			sb.WriteString(renderCell(c, c.Kind != calendar.Empty && dates.IsSameDay(c.Date, m.cursor)))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// monthRow places each month abbreviation over the week column where the
// month starts. A label that would overlap the previous one is dropped.
func monthRow(year int) string {
	const indent = 4
	row := []rune(strings.Repeat(" ", indent+dates.WeeksPerYear*cellWidth))
	next := 0
	for _, l := range calendar.MonthLabels(year) {
		pos := indent + l.Week*cellWidth
		name := []rune(l.Name())
		if pos < next || pos+len(name) > len(row) {
			continue
		}
		copy(row[pos:], name)
		next = pos + len(name) + 1
	}
	return strings.TrimRight(string(row), " ")
}

func renderCell(c calendar.Cell, isCursor bool) string {
	glyph := cellGlyph(c)
	switch {
	case isCursor:
		return theme.CellCursor.Render(glyph)
	case c.Today:
		return theme.CellToday.Render(glyph)
	}

	switch c.Kind {
	case calendar.HasNote:
		return theme.Swatch(c.Color).Render(glyph)
	case calendar.NoNote:
		return theme.CellNoNote.Render(glyph)
	case calendar.Future:
		return theme.CellFuture.Render(glyph)
	case calendar.BeforeBirth:
		return theme.CellBeforeBirth.Render(glyph)
	}
	return glyph
}

func cellGlyph(c calendar.Cell) string {
	switch c.Kind {
	case calendar.HasNote:
		if c.Special {
			return "◆"
		}
		return "■"
	case calendar.NoNote:
		if c.Today {
			return "□"
		}
		return "·"
	case calendar.Future, calendar.BeforeBirth:
		return "·"
	}
	return " "
}
