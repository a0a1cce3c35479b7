package shared

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"daytrace/internal/tui/theme"
)

// HelpSection is a titled group of key bindings shown in the help popup
type HelpSection struct {
	Title string
	Binds []key.Binding
}

var (
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	helpKeyStyle     = lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary)
	helpDescStyle    = lipgloss.NewStyle().Foreground(theme.Text)
	helpDismissStyle = lipgloss.NewStyle().Foreground(theme.TextMuted)
)

// RenderHelpPopup renders a centered help popup with the given sections.
// Disabled bindings are left out.
func RenderHelpPopup(title string, sections []HelpSection, width, height int) string {
	line := func(k, desc string) string {
		return "  " + helpKeyStyle.Width(14).Render(k) + helpDescStyle.Render(desc)
	}

	var content strings.Builder
	content.WriteString(theme.ModalTitle.Render(title) + "\n\n")
	for i, section := range sections {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(helpSectionStyle.Render(section.Title) + "\n")
		for _, bind := range section.Binds {
			if !bind.Enabled() {
				continue
			}
			h := bind.Help()
			content.WriteString(line(h.Key, h.Desc) + "\n")
		}
	}

	content.WriteString("\n" + helpDismissStyle.Render("Press any key to close"))

	box := theme.ModalBox.Render(content.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
