package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daytrace/internal/app"
	"daytrace/internal/config"
	"daytrace/internal/logs"
	"daytrace/internal/tui/lifecal"
	"daytrace/internal/tui/messages"
	"daytrace/internal/tui/settingsview"
	"daytrace/internal/tui/shared"
	"daytrace/internal/tui/theme"
	"daytrace/internal/vault"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	app          *app.App
	events       <-chan vault.Event
	currentView  ViewType
	calendarView lifecal.Model
	settingsView settingsview.Model
	help         help.Model
	showHelp     bool
	notice       string
	noticeError  bool
	noticeSeq    int
	width        int
	height       int
	ready        bool
}

// NewAppModel creates the root application model. events may be nil when
// the vault is not watched.
func NewAppModel(cfg *config.Config, a *app.App, events <-chan vault.Event) AppModel {
	view := ViewCalendar
	if cfg.DefaultView == config.ViewSettings {
		view = ViewSettings
	}

	return AppModel{
		app:          a,
		events:       events,
		currentView:  view,
		calendarView: lifecal.New(a, cfg.Editor),
		settingsView: settingsview.New(a),
		help:         help.New(),
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return messages.WaitForEvent(m.events)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		contentHeight := msg.Height - 3 // Reserve space for tab bar and status bar
		m.calendarView.SetSize(msg.Width, contentHeight)
		m.settingsView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.VaultEventMsg:
		changed, err := m.app.HandleEvent(msg.Event)
		if err != nil {
			logs.Logger.Printf("Error applying %s of %s: %v", msg.Event.Op, msg.Event.File.Path, err)
		}
		if changed {
			m.calendarView.Refresh()
		}
		return m, messages.WaitForEvent(m.events)

	case messages.WatchStoppedMsg:
		logs.Logger.Println("Vault watcher stopped")
		return m, nil

	case messages.EditorFinishedMsg:
		if msg.Err != nil {
			logs.Logger.Printf("Error running editor: %v", msg.Err)
			return m, messages.NotifyError(fmt.Sprintf("Editor failed: %v", msg.Err))
		}
		// The watcher reports the edit too, this makes it visible right away
		if m.app.Index.Update(msg.File) {
			m.calendarView.Refresh()
		}
		return m, nil

	case messages.NoticeMsg:
		m.noticeSeq++
		m.notice = msg.Text
		m.noticeError = msg.Error
		seq := m.noticeSeq
		return m, tea.Tick(messages.NoticeDuration, func(time.Time) tea.Msg {
			return messages.ClearNoticeMsg{Seq: seq}
		})

	case messages.ClearNoticeMsg:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case messages.SettingsChangedMsg:
		m.calendarView.Refresh()
		m.settingsView.Reload()
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewSettings {
			m.settingsView.Reload()
		}
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if !m.childIsModal() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewCalendar
				return m, nil
			case "2", "s":
				m.currentView = ViewSettings
				m.settingsView.Reload()
				return m, nil
			case "tab":
				if m.currentView == ViewCalendar {
					m.currentView = ViewSettings
					m.settingsView.Reload()
				} else {
					m.currentView = ViewCalendar
				}
				return m, nil
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCalendar:
		m.calendarView, cmd = m.calendarView.Update(msg)
	case ViewSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) childIsModal() bool {
	switch m.currentView {
	case ViewCalendar:
		return m.calendarView.IsInModalState()
	case ViewSettings:
		return m.settingsView.IsInModalState()
	}
	return false
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content string
	var keys help.KeyMap
	switch m.currentView {
	case ViewCalendar:
		content = m.calendarView.View()
		keys = m.calendarView.KeyMap()
	case ViewSettings:
		content = m.settingsView.View()
		keys = m.settingsView.KeyMap()
	}
	content = shared.Truncate(content, m.height-3)

	var statusText string
	switch {
	case m.notice != "" && m.noticeError:
		statusText = theme.NoticeError.Render(m.notice)
	case m.notice != "":
		statusText = theme.NoticeInfo.Render(m.notice)
	default:
		statusText = m.help.ShortHelpView(keys.ShortHelp()) + HelpStyle.Render(" • 1/2: views • ?: help • q: quit")
	}

	statusBar := StatusBarStyle.Width(m.width).Render(statusText)
	body := lipgloss.PlaceVertical(m.height-3, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), body, statusBar)
}

func (m AppModel) renderTabs() string {
	tab := func(label string, active bool) string {
		if active {
			return theme.TabActive.Render(label)
		}
		return theme.TabInactive.Render(label)
	}
	return tab("1 Calendar", m.currentView == ViewCalendar) + "   " +
		tab("2 Settings", m.currentView == ViewSettings)
}

func (m AppModel) renderHelpOverlay() string {
	sections := m.calendarView.HelpSections()
	sections = append(sections, m.settingsView.HelpSections()...)
	sections = append(sections, globalHelp())
	return shared.RenderHelpPopup("DayTrace - Keyboard Shortcuts", sections, m.width, m.height)
}
