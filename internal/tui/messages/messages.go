package messages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"daytrace/internal/vault"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewCalendar ViewType = iota
	ViewSettings
)

// NoticeDuration is how long a transient notice stays on screen
const NoticeDuration = 4 * time.Second

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// VaultEventMsg carries one debounced file change from the vault watcher
type VaultEventMsg struct {
	Event vault.Event
}

// WatchStoppedMsg is sent once the watcher channel closes
type WatchStoppedMsg struct{}

// NoticeMsg asks the root model to show a transient notice
type NoticeMsg struct {
	Text  string
	Error bool
}

// ClearNoticeMsg dismisses the notice with the given sequence number
type ClearNoticeMsg struct {
	Seq int
}

// SettingsChangedMsg signals that settings were saved and the calendar
// must be recomputed
type SettingsChangedMsg struct{}

// EditorFinishedMsg is sent when the external editor exits
type EditorFinishedMsg struct {
	File vault.File
	Err  error
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

// Notify shows text as a transient notice.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text}
	}
}

// NotifyError shows text as a transient error notice.
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return NoticeMsg{Text: text, Error: true}
	}
}

// SettingsChanged tells the root model to refresh after a settings save.
func SettingsChanged() tea.Msg {
	return SettingsChangedMsg{}
}

// WaitForEvent blocks on the watcher channel and delivers the next event.
func WaitForEvent(events <-chan vault.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return WatchStoppedMsg{}
		}
		return VaultEventMsg{Event: ev}
	}
}
