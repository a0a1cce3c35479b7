package lifecal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevYear key.Binding
	NextYear key.Binding
	Today    key.Binding
	Jump     key.Binding
	Open     key.Binding
	Refresh  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous week"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next week"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "previous day"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "next day"),
		),
		PrevYear: key.NewBinding(
			key.WithKeys("H", "pgup"),
			key.WithHelp("H", "previous year"),
		),
		NextYear: key.NewBinding(
			key.WithKeys("L", "pgdown"),
			key.WithHelp("L", "next year"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "jump to today"),
		),
		Jump: key.NewBinding(
			key.WithKeys("g", "/"),
			key.WithHelp("g", "jump to age"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open or create note"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rescan vault"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Today, k.Jump, k.PrevYear, k.NextYear}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PrevYear, k.NextYear},
		{k.Today, k.Jump, k.Open, k.Refresh},
	}
}
