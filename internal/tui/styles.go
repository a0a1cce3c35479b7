package tui

import "daytrace/internal/tui/theme"

var (
	// Status bar
	StatusBarStyle = theme.StatusBar.PaddingLeft(1)

	// Help text
	HelpStyle = theme.HelpHint
)
