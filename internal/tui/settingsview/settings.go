package settingsview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"daytrace/internal/app"
	"daytrace/internal/logs"
	"daytrace/internal/settings"
	"daytrace/internal/tui/messages"
	"daytrace/internal/tui/shared"
)

type rowKind int

const (
	rowBirthDate rowKind = iota
	rowLifeExpectancy
	rowFolder
	rowColor
	rowAddColor
)

type row struct {
	kind  rowKind
	color string // palette key for rowColor
}

type editMode int

const (
	modeBrowse editMode = iota
	modeEdit
	modeAddName
	modeAddColor
)

// Model is the settings page: birth date, life expectancy, daily notes
// folder and the color palette
type Model struct {
	app  *app.App
	keys keyMap

	current settings.Settings
	rows    []row
	cursor  int

	mode       editMode
	input      textinput.Model
	pendingKey string   // color name typed in modeAddName
	completion []string // existing palette keys matching the typed name

	width  int
	height int
}

// New creates the settings view.
func New(a *app.App) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	m := Model{
		app:   a,
		keys:  newKeyMap(),
		input: ti,
	}
	m.Reload()
	return m
}

// Reload reads the current settings and rebuilds the rows.
func (m *Model) Reload() {
	m.current = m.app.Settings.Get()
	m.rows = []row{{kind: rowBirthDate}, {kind: rowLifeExpectancy}, {kind: rowFolder}}
	for _, name := range m.current.ColorNames() {
		m.rows = append(m.rows, row{kind: rowColor, color: name})
	}
	m.rows = append(m.rows, row{kind: rowAddColor})
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
}

// SetSize updates the view dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInModalState returns true while a value is being typed
func (m Model) IsInModalState() bool {
	return m.mode != modeBrowse
}

// KeyMap returns the bindings for the status bar help
func (m Model) KeyMap() help.KeyMap {
	return m.keys
}

// HelpSections returns the bindings for the help popup
func (m Model) HelpSections() []shared.HelpSection {
	return []shared.HelpSection{
		{Title: "Settings", Binds: []key.Binding{m.keys.Up, m.keys.Down, m.keys.Edit, m.keys.Decrease, m.keys.Increase, m.keys.Add, m.keys.Delete, m.keys.Back}},
	}
}

// Update handles key events for the settings view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode != modeBrowse {
		return m.updateInput(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Decrease):
		if m.rows[m.cursor].kind == rowLifeExpectancy {
			return m.stepLifeExpectancy(-1)
		}
	case key.Matches(keyMsg, m.keys.Increase):
		if m.rows[m.cursor].kind == rowLifeExpectancy {
			return m.stepLifeExpectancy(1)
		}
	case key.Matches(keyMsg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(keyMsg, m.keys.Add):
		return m.startAdd()
	case key.Matches(keyMsg, m.keys.Delete):
		if r := m.rows[m.cursor]; r.kind == rowColor {
			return m.save(func(s *settings.Settings) error {
				return s.RemoveColor(r.color)
			}, "Removed "+r.color)
		}
	case key.Matches(keyMsg, m.keys.Back):
		return m, messages.SwitchView(messages.ViewCalendar)
	}
	return m, nil
}

func (m Model) startEdit() (Model, tea.Cmd) {
	r := m.rows[m.cursor]
	switch r.kind {
	case rowBirthDate:
		m.input.Placeholder = "YYYY-MM-DD"
		m.input.SetValue(m.current.BirthDate)
	case rowLifeExpectancy:
		m.input.Placeholder = fmt.Sprintf("%d-%d", settings.MinLifeExpectancy, settings.MaxLifeExpectancy)
		m.input.SetValue(strconv.Itoa(m.current.LifeExpectancy))
	case rowFolder:
		m.input.Placeholder = "whole vault"
		m.input.SetValue(m.current.DailyNotesFolder)
	case rowColor:
		m.input.Placeholder = "#RRGGBB"
		m.input.SetValue(m.current.Palette[r.color])
	case rowAddColor:
		return m.startAdd()
	}
	m.mode = modeEdit
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) startAdd() (Model, tea.Cmd) {
	m.mode = modeAddName
	m.pendingKey = ""
	m.completion = nil
	m.input.Placeholder = "color name"
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		return m, nil
	case "tab":
		if m.mode == modeAddName && len(m.completion) > 0 {
			m.input.SetValue(m.completion[0])
			m.input.CursorEnd()
			m.complete()
		}
		return m, nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.mode == modeAddName {
		m.complete()
	}
	return m, cmd
}

// complete lists existing palette keys matching the typed name, so adding
// an existing name is visibly an edit
func (m *Model) complete() {
	query := strings.TrimSpace(m.input.Value())
	m.completion = nil
	if query == "" {
		return
	}
	names := m.current.ColorNames()
	for _, match := range fuzzy.Find(query, names) {
		m.completion = append(m.completion, names[match.Index])
	}
}

func (m Model) submit() (Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddName:
		if value == "" {
			return m, messages.NotifyError(settings.ErrEmptyColorName.Error())
		}
		m.pendingKey = value
		m.mode = modeAddColor
		m.input.Placeholder = "#RRGGBB"
		m.input.SetValue(m.current.Palette[value])
		m.input.CursorEnd()
		return m, nil

	case modeAddColor:
		name := m.pendingKey
		m.mode = modeBrowse
		m.input.Blur()
		return m.save(func(s *settings.Settings) error {
			return s.SetColor(name, value)
		}, "Saved color "+name)
	}

	m.mode = modeBrowse
	m.input.Blur()

	r := m.rows[m.cursor]
	switch r.kind {
	case rowBirthDate:
		return m.save(func(s *settings.Settings) error {
			return s.SetBirthDate(value)
		}, "Birth date saved")
	case rowLifeExpectancy:
		years, err := strconv.Atoi(value)
		if err != nil {
			return m, messages.NotifyError(settings.ErrInvalidLifeExpectancy.Error())
		}
		return m.save(func(s *settings.Settings) error {
			return s.SetLifeExpectancy(years)
		}, "Life expectancy saved")
	case rowFolder:
		return m.save(func(s *settings.Settings) error {
			s.SetDailyNotesFolder(value)
			return nil
		}, "Folder saved")
	case rowColor:
		return m.save(func(s *settings.Settings) error {
			return s.SetColor(r.color, value)
		}, "Saved color "+r.color)
	}
	return m, nil
}

func (m Model) stepLifeExpectancy(delta int) (Model, tea.Cmd) {
	years := m.current.LifeExpectancy + delta
	if years < settings.MinLifeExpectancy || years > settings.MaxLifeExpectancy {
		return m, nil
	}
	return m.save(func(s *settings.Settings) error {
		return s.SetLifeExpectancy(years)
	}, "")
}

// save persists a change and tells the root model to refresh the calendar.
// Validation failures are shown as notices.
func (m Model) save(fn func(*settings.Settings) error, notice string) (Model, tea.Cmd) {
	_, err := m.app.UpdateSettings(fn)
	if err != nil {
		if !isValidation(err) {
			logs.Logger.Printf("Error saving settings: %v", err)
		}
		m.Reload()
		return m, messages.NotifyError(capitalize(err.Error()))
	}

	m.Reload()
	cmds := []tea.Cmd{messages.SettingsChanged}
	if notice != "" {
		cmds = append(cmds, messages.Notify(notice))
	}
	return m, tea.Batch(cmds...)
}

func isValidation(err error) bool {
	for _, target := range []error{
		settings.ErrInvalidBirthDate,
		settings.ErrInvalidLifeExpectancy,
		settings.ErrDefaultColor,
		settings.ErrEmptyColorName,
		settings.ErrEmptyColorValue,
		settings.ErrUnknownColor,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
