package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daytrace/internal/app"
	"daytrace/internal/config"
	"daytrace/internal/tui/messages"
	"daytrace/internal/vault"
)

func newTestApp(t *testing.T, view string) (AppModel, *app.App, string) {
	t.Helper()
	root := t.TempDir()
	a, err := app.Open(root, nil)
	require.NoError(t, err)
	a.Now = func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local) }
	require.NoError(t, a.Refresh())

	cfg := &config.Config{VaultDir: root, Editor: "true", DefaultView: view}
	m := NewAppModel(cfg, a, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 45})
	return updated.(AppModel), a, root
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultView(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewSettings)
	assert.Equal(t, ViewSettings, m.currentView)

	m, _, _ = newTestApp(t, config.ViewCalendar)
	assert.Equal(t, ViewCalendar, m.currentView)
	assert.Nil(t, m.Init())
}

func TestSwitchViews(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewCalendar)

	m, _ = send(m, runes("2"))
	assert.Equal(t, ViewSettings, m.currentView)
	assert.Contains(t, m.View(), "Birth date")

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewCalendar, m.currentView)

	m, _ = send(m, messages.SwitchViewMsg{View: messages.ViewSettings})
	assert.Equal(t, ViewSettings, m.currentView)
}

func TestGlobalKeysIgnoredWhileModal(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewCalendar)

	m, _ = send(m, runes("g"))
	require.True(t, m.childIsModal())

	m, _ = send(m, runes("2"))
	assert.Equal(t, ViewCalendar, m.currentView)
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewCalendar)

	m, _ = send(m, runes("?"))
	assert.Contains(t, m.View(), "DayTrace - Keyboard Shortcuts")

	m, _ = send(m, runes("x"))
	assert.False(t, m.showHelp)
}

func TestNoticeClearsOnlyLatest(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewCalendar)

	m, cmd := send(m, messages.NoticeMsg{Text: "first"})
	require.NotNil(t, cmd)
	m, _ = send(m, messages.NoticeMsg{Text: "Create failed: boom", Error: true})
	assert.Contains(t, m.View(), "Create failed: boom")

	// The tick of the first notice must not clear the second
	m, _ = send(m, messages.ClearNoticeMsg{Seq: 1})
	assert.Equal(t, "Create failed: boom", m.notice)

	m, _ = send(m, messages.ClearNoticeMsg{Seq: 2})
	assert.Empty(t, m.notice)
}

func TestVaultEventRefreshesCalendar(t *testing.T) {
	m, a, root := newTestApp(t, config.ViewCalendar)
	ch := make(chan vault.Event)
	m.events = ch

	require.NoError(t, os.WriteFile(filepath.Join(root, "2024-06-15.md"), []byte(""), 0644))
	file, err := a.Vault.File("2024-06-15.md")
	require.NoError(t, err)

	m, cmd := send(m, messages.VaultEventMsg{Event: vault.Event{Op: vault.OpCreate, File: file}})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, a.Index.Len())
	assert.True(t, strings.Contains(m.View(), "1 notes"))
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestApp(t, config.ViewCalendar)

	_, cmd := send(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
