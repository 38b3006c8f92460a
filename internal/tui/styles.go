package tui

import "github.com/charmbracelet/lipgloss"

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginTop(1)
	helpBarStyle = lipgloss.NewStyle().MarginTop(1)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
