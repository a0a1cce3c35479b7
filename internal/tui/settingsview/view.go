package settingsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daytrace/internal/settings"
	"daytrace/internal/tui/shared"
	"daytrace/internal/tui/theme"
)

const (
	labelWidth  = 20
	sliderWidth = 35
)

var labelStyle = lipgloss.NewStyle().Width(labelWidth)

// View renders the settings page
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(theme.Title.Render(" Settings"))
	sb.WriteString("  ")
	sb.WriteString(theme.Muted.Render(m.app.Settings.Path()))
	sb.WriteString("\n\n")

	for i, r := range m.rows {
		if r.kind == rowColor && (i == 0 || m.rows[i-1].kind != rowColor) {
			sb.WriteString("\n")
			sb.WriteString(theme.Subtitle.Render(" Palette"))
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderRow(i, r))
		sb.WriteString("\n")
	}

	if m.mode != modeBrowse {
		sb.WriteString("\n")
		sb.WriteString(m.renderInput())
	}

	return shared.WithBottomHints(sb.String(), m.hints(), m.height)
}

func (m Model) renderRow(i int, r row) string {
	prefix := "   "
	if i == m.cursor {
		prefix = theme.Cursor.Render(" > ")
	}

	var label, value string
	switch r.kind {
	case rowBirthDate:
		label, value = "Birth date", m.current.BirthDate
	case rowLifeExpectancy:
		label = "Life expectancy"
		value = slider(m.current.LifeExpectancy) + fmt.Sprintf(" %d years", m.current.LifeExpectancy)
	case rowFolder:
		label, value = "Daily notes folder", m.current.DailyNotesFolder
		if value == "" {
			value = theme.Muted.Render("(whole vault)")
		}
	case rowColor:
		color := m.current.Palette[r.color]
		label = r.color
		value = theme.Swatch(color).Render("■■") + " " + color
		if r.color == settings.DefaultColorKey {
			value += theme.Muted.Render("  default")
		}
	case rowAddColor:
		return prefix + theme.Muted.Render("+ add color")
	}

	line := labelStyle.Render(label) + value
	if i == m.cursor {
		line = theme.Bold.Render(line)
	}
	return prefix + line
}

func slider(years int) string {
	span := settings.MaxLifeExpectancy - settings.MinLifeExpectancy
	filled := (years - settings.MinLifeExpectancy) * sliderWidth / span
	filled = min(max(filled, 0), sliderWidth)
	return theme.Ok.Render(strings.Repeat("━", filled)) +
		theme.Muted.Render(strings.Repeat("─", sliderWidth-filled))
}

func (m Model) renderInput() string {
	var title string
	switch m.mode {
	case modeAddName:
		title = "New color name"
	case modeAddColor:
		title = "Color for " + m.pendingKey
	default:
		title = "Edit value"
	}

	var sb strings.Builder
	sb.WriteString(theme.ModalTitle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	if m.mode == modeAddName && len(m.completion) > 0 {
		sb.WriteString("\n")
		sb.WriteString(theme.Muted.Render("existing: " + strings.Join(m.completion, ", ") + "  (tab to pick)"))
	}
	return theme.ModalBox.Render(sb.String())
}

func (m Model) hints() string {
	if m.mode != modeBrowse {
		return theme.HelpHint.Render(" enter: save • esc: cancel")
	}
	return ""
}
