package lifecal

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"daytrace/internal/app"
	"daytrace/internal/calendar"
	"daytrace/internal/dates"
	"daytrace/internal/logs"
	"daytrace/internal/notes"
	"daytrace/internal/tui/messages"
	"daytrace/internal/tui/shared"
	"daytrace/internal/vault"
)

const (
	headerHeight = 4  // stats, legend, detail line, blank
	blockHeight  = 10 // year header, month labels, 7 weekday rows, blank
)

// Model is the life calendar view: one block per year of life with a day
// cursor moving across them
type Model struct {
	app    *app.App
	editor string
	keys   keyMap

	params calendar.Params
	blocks []calendar.YearBlock
	stats  calendar.Stats
	legend []calendar.LegendEntry

	cursor time.Time
	top    int // index of the first visible block
	detail detail

	jumping bool
	jump    jumpModel

	width  int
	height int
}

// detail describes the day under the cursor
type detail struct {
	cell    calendar.Cell
	onGrid  bool
	summary notes.Summary
}

// New creates the calendar view positioned on today.
func New(a *app.App, editor string) Model {
	m := Model{
		app:    a,
		editor: editor,
		keys:   newKeyMap(),
	}
	m.Refresh()
	m.cursor = m.params.Today
	m.clampCursor()
	m.top = calendar.TodayBlock(m.params)
	m.refreshDetail()
	return m
}

// Refresh recomputes the grid from the index and settings. The cursor and
// scroll position are kept.
func (m *Model) Refresh() {
	m.params = m.app.Params()
	m.blocks = calendar.Build(m.params, m.app.Index)
	m.stats = calendar.ComputeStats(m.params, m.app.Index.Len())
	m.legend = calendar.Legend(m.params.Palette)

	if !m.cursor.IsZero() {
		m.clampCursor()
	}
	m.top = min(m.top, max(len(m.blocks)-1, 0))
	m.ensureCursorInView()
	m.refreshDetail()
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorInView()
}

// IsInModalState returns true while the age picker is open
func (m Model) IsInModalState() bool {
	return m.jumping
}

// KeyMap returns the bindings for the status bar help
func (m Model) KeyMap() help.KeyMap {
	return m.keys
}

// HelpSections returns the bindings for the help popup
func (m Model) HelpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Calendar", Binds: []key.Binding{m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down, m.keys.PrevYear, m.keys.NextYear}},
		{Title: "Days", Binds: []key.Binding{m.keys.Today, m.keys.Jump, m.keys.Open, m.keys.Refresh}},
	}
}

// Cursor returns the selected day
func (m Model) Cursor() time.Time {
	return m.cursor
}

// Top returns the index of the first visible year block
func (m Model) Top() int {
	return m.top
}

// Update handles key events for the calendar view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.jumping {
		var (
			chosen *jumpOption
			done   bool
			cmd    tea.Cmd
		)
		m.jump, chosen, done, cmd = m.jump.update(keyMsg)
		if done {
			m.jumping = false
		}
		if chosen != nil {
			m.jumpToAge(chosen.Age)
		}
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		m.move(0, 0, -7)
	case key.Matches(keyMsg, m.keys.Right):
		m.move(0, 0, 7)
	case key.Matches(keyMsg, m.keys.Up):
		m.move(0, 0, -1)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(0, 0, 1)
	case key.Matches(keyMsg, m.keys.PrevYear):
		m.move(-1, 0, 0)
	case key.Matches(keyMsg, m.keys.NextYear):
		m.move(1, 0, 0)
	case key.Matches(keyMsg, m.keys.Today):
		m.cursor = m.params.Today
		m.clampCursor()
		m.ensureCursorInView()
		m.refreshDetail()
	case key.Matches(keyMsg, m.keys.Jump):
		birth := m.params.Birth
		m.jump = newJumpModel(birth.Year(), m.params.LifeExpectancy, m.cursor.Year()-birth.Year())
		m.jumping = true
		return m, nil
	case key.Matches(keyMsg, m.keys.Refresh):
		if err := m.app.Refresh(); err != nil {
			logs.Logger.Printf("Error rescanning vault: %v", err)
			return m, messages.NotifyError(fmt.Sprintf("Rescan failed: %v", err))
		}
		m.Refresh()
		return m, messages.Notify(fmt.Sprintf("Indexed %d notes", m.app.Index.Len()))
	case key.Matches(keyMsg, m.keys.Open):
		return m.activate()
	}
	return m, nil
}

func (m *Model) move(years, months, days int) {
	m.cursor = m.cursor.AddDate(years, months, days)
	m.clampCursor()
	m.ensureCursorInView()
	m.refreshDetail()
}

// jumpToAge scrolls the block of age to the top, keeping the cursor's day
// of year where possible.
func (m *Model) jumpToAge(age int) {
	year := m.params.Birth.Year() + age
	m.cursor = m.cursor.AddDate(year-m.cursor.Year(), 0, 0)
	m.clampCursor()
	m.top = min(max(age, 0), max(len(m.blocks)-1, 0))
	m.ensureCursorInView()
	m.refreshDetail()
}

// activate opens the note of the cursor day, or creates it when the day
// has none. Other cells do nothing.
func (m Model) activate() (Model, tea.Cmd) {
	if !m.detail.onGrid {
		return m, nil
	}
	cell := m.detail.cell

	switch cell.Kind {
	case calendar.HasNote:
		return m, openEditor(m.editor, cell.Record.File)

	case calendar.NoNote:
		file, created, err := m.app.CreateDayNote(cell.Date)
		if err != nil {
			logs.Logger.Printf("Error creating day note: %v", err)
			return m, messages.NotifyError(fmt.Sprintf("Create failed: %v", err))
		}
		if !created {
			return m, openEditor(m.editor, file)
		}
		m.Refresh()
		return m, tea.Batch(
			messages.Notify("Created: "+file.Name()),
			openEditor(m.editor, file),
		)
	}
	return m, nil
}

func (m *Model) clampCursor() {
	birthYear := m.params.Birth.Year()
	first := dates.YearStart(birthYear)
	last := dates.YearStart(birthYear + m.params.LifeExpectancy + 1).AddDate(0, 0, -1)

	m.cursor = dates.Midnight(m.cursor)
	if m.cursor.Before(first) {
		m.cursor = first
	}
	if m.cursor.After(last) {
		m.cursor = last
	}
}

func (m Model) visibleBlocks() int {
	return max(1, (m.height-headerHeight)/blockHeight)
}

func (m *Model) ensureCursorInView() {
	if len(m.blocks) == 0 {
		return
	}
	idx := m.cursorBlock()
	visible := m.visibleBlocks()
	if idx < m.top {
		m.top = idx
	}
	if idx >= m.top+visible {
		m.top = idx - visible + 1
	}
	m.top = min(max(m.top, 0), len(m.blocks)-1)
}

func (m Model) cursorBlock() int {
	idx := m.cursor.Year() - m.params.Birth.Year()
	return min(max(idx, 0), max(len(m.blocks)-1, 0))
}

func (m *Model) refreshDetail() {
	m.detail = detail{}
	if len(m.blocks) == 0 {
		return
	}
	block := m.blocks[m.cursorBlock()]
	w, k, ok := block.Find(m.cursor)
	if !ok {
		return
	}
	m.detail.onGrid = true
	m.detail.cell = block.Cells[w][k]

	if rec := m.detail.cell.Record; rec != nil {
		summary, err := m.app.Summary(rec.File)
		if err != nil {
			logs.Logger.Printf("Warning: could not read %s: %v", rec.File.Path, err)
		}
		m.detail.summary = summary
	}
}

func openEditor(editor string, file vault.File) tea.Cmd {
	args := strings.Fields(editor)
	if len(args) == 0 {
		args = []string{"vim"}
	}
	c := exec.Command(args[0], append(args[1:], file.AbsPath)...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return messages.EditorFinishedMsg{File: file, Err: err}
	})
}
