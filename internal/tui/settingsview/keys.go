package settingsview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Decrease key.Binding
	Increase key.Binding
	Add      key.Binding
	Delete   key.Binding
	Back     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Edit:     key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
		Decrease: key.NewBinding(key.WithKeys("h", "left", "-"), key.WithHelp("h/-", "fewer years")),
		Increase: key.NewBinding(key.WithKeys("l", "right", "+"), key.WithHelp("l/+", "more years")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add color")),
		Delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete color")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to calendar")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Add, k.Delete, k.Back}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.Decrease, k.Increase, k.Add, k.Delete, k.Back},
	}
}
