package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.nameField, cmd = m.nameField.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "tab":
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	}

	if m.focus == focusInput {
		switch msg.String() {
		case "enter":
			m.moveFocus(1)
			return m, nil
		}
		var cmd tea.Cmd
		m.nameField, cmd = m.nameField.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "t":
		m.themeIndex = (m.themeIndex + 1) % len(m.themeNames)
		return m, nil
	case "enter", " ":
		if role, ok := m.focusedRole(); ok {
			m.lastPressed = roleLabel(role)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) moveFocus(delta int) {
	count := m.focusCount()
	m.focus = (m.focus + delta + count) % count
	if m.focus == focusInput {
		m.nameField.Focus()
	} else {
		m.nameField.Blur()
	}
}
