package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/glintkit/glint/internal/components"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCyclesFocusThroughAllRegions(t *testing.T) {
	m := NewModel()

	for i := 0; i < len(galleryRoles); i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(Model)
		require.Equal(t, focusFirstButton+i, m.focus)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	require.Equal(t, focusInput, m.focus, "focus should wrap back to the input")
}

func TestShiftTabMovesFocusBackwards(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	require.Equal(t, m.focusCount()-1, m.focus)
}

func TestTypingUpdatesNameField(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyRunes("g"))
	m = updated.(Model)
	require.Equal(t, "g", m.nameField.Value())
	require.Empty(t, m.FieldError())
}

func TestThemeKeyIsTypedIntoFocusedInput(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(keyRunes("t"))
	m = updated.(Model)
	require.Equal(t, "t", m.nameField.Value())
	require.Equal(t, "default", m.ThemeName(), "theme should not change while typing")
}

func TestThemeKeyCyclesThemesWhenInputBlurred(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	updated, _ = m.Update(keyRunes("t"))
	m = updated.(Model)
	require.Equal(t, "dark", m.ThemeName())

	updated, _ = m.Update(keyRunes("t"))
	m = updated.(Model)
	require.Equal(t, "default", m.ThemeName(), "theme cycling should wrap")
}

func TestEnterRecordsPressedButton(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Equal(t, roleLabel(components.RoleDefault), m.lastPressed)
}

func TestCtrlCQuits(t *testing.T) {
	m := NewModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
}

func TestWindowSizeIsTracked(t *testing.T) {
	m := NewModel()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	require.Equal(t, 100, m.width)
}
