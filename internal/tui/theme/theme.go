package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Color palette: ANSI 0-15 plus one 256-color surface
// ---------------------------------------------------------------------------

var (
	Text       = lipgloss.Color("7")
	TextMuted  = lipgloss.Color("8")
	TextBright = lipgloss.Color("15")

	Primary   = lipgloss.Color("4")   // blue
	Secondary = lipgloss.Color("6")   // cyan
	Success   = lipgloss.Color("2")   // green
	Warning   = lipgloss.Color("3")   // yellow
	Danger    = lipgloss.Color("1")   // red
	Surface   = lipgloss.Color("236") // dark bg
	Border    = lipgloss.Color("8")   // dim
)

// ---------------------------------------------------------------------------
// Semantic text styles
// ---------------------------------------------------------------------------

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	Subtitle = lipgloss.NewStyle().Bold(true).Foreground(Secondary)
	Muted    = lipgloss.NewStyle().Foreground(TextMuted)
	Bold     = lipgloss.NewStyle().Bold(true)

	Ok = lipgloss.NewStyle().Bold(true).Foreground(Success)

	Cursor = lipgloss.NewStyle().Bold(true).Foreground(Success)
)

// ---------------------------------------------------------------------------
// Calendar cells
// ---------------------------------------------------------------------------

var (
	CellFuture      = lipgloss.NewStyle().Foreground(Surface)
	CellBeforeBirth = lipgloss.NewStyle().Foreground(Surface)
	CellNoNote      = lipgloss.NewStyle().Foreground(TextMuted)
	CellToday       = lipgloss.NewStyle().Bold(true).Foreground(Success)
	CellCursor      = lipgloss.NewStyle().Bold(true).Foreground(TextBright).Background(Primary)

	YearLabel  = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	AgeLabel   = lipgloss.NewStyle().Foreground(Secondary)
	MonthLabel = lipgloss.NewStyle().Foreground(TextMuted)
	DayLabel   = lipgloss.NewStyle().Foreground(TextMuted)
)

// ---------------------------------------------------------------------------
// Reusable component helpers
// ---------------------------------------------------------------------------

var (
	ModalBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(Warning)

	ModalHelp = lipgloss.NewStyle().Foreground(TextMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(TextMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	HelpHint = lipgloss.NewStyle().Foreground(TextMuted)

	NoticeInfo  = lipgloss.NewStyle().Bold(true).Foreground(Success)
	NoticeError = lipgloss.NewStyle().Bold(true).Foreground(Danger)

	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	TabInactive = lipgloss.NewStyle().Foreground(TextMuted)
)

// Swatch returns a style painting text in a palette color such as
// "#FF8A00". Styles are cached per color.
func Swatch(color string) lipgloss.Style {
	if s, ok := swatches[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	swatches[color] = s
	return s
}

var swatches = map[string]lipgloss.Style{}
