package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestViewShowsGalleryChrome(t *testing.T) {
	m := NewModel()
	out := m.View()

	require.Contains(t, out, "Component Gallery")
	require.Contains(t, out, "theme: default")
	require.Contains(t, out, "Project name")
	for _, label := range roleLabels {
		require.Contains(t, out, label)
	}
}

func TestViewShowsHintUntilValueIsInvalid(t *testing.T) {
	m := NewModel()
	require.Contains(t, m.View(), "Lowercase letters, digits and dashes.")

	m.nameField.SetValue("Not Valid")
	out := m.View()
	require.Contains(t, out, "Only lowercase letters, digits and dashes are allowed.")
	require.NotContains(t, out, "Lowercase letters, digits and dashes.")
}

func TestViewShowsLastPressedButton(t *testing.T) {
	m := NewModel()
	m.lastPressed = "Delete"
	require.Contains(t, m.View(), "pressed: Delete")
}

func TestViewEmptyAfterQuit(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	require.Equal(t, "", m.View())
}
