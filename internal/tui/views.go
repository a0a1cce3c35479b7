package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"daytrace/internal/tui/messages"
	"daytrace/internal/tui/shared"
)

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewCalendar = messages.ViewCalendar
	ViewSettings = messages.ViewSettings
)

type SwitchViewMsg = messages.SwitchViewMsg

func globalHelp() shared.HelpSection {
	return shared.HelpSection{
		Title: "Global",
		Binds: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "Calendar")),
			key.NewBinding(key.WithKeys("2", "s"), key.WithHelp("2 / s", "Settings")),
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "Switch view")),
			key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Show this help")),
			key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
			key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "Force quit")),
		},
	}
}
