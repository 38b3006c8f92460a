package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintkit/glint/internal/components"
)

var roleLabels = map[components.ButtonRole]string{
	components.RoleDefault:     "Save",
	components.RoleDestructive: "Delete",
	components.RoleSuccess:     "Approve",
	components.RoleOutline:     "Preview",
	components.RoleSecondary:   "Duplicate",
	components.RoleGhost:       "Dismiss",
	components.RoleLink:        "Learn more",
}

func roleLabel(role components.ButtonRole) string {
	return roleLabels[role]
}

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.Theme())
	if m.width > 0 {
		ctx = ctx.WithWidth(m.width)
	}

	var sections []string

	header := components.NewHeader("Component Gallery").
		WithSubtitle(fmt.Sprintf("theme: %s", m.ThemeName())).
		WithActions(components.InfoBadge(m.ThemeName()))
	if m.width > 0 {
		header = header.WithWidth(m.width)
	}
	sections = append(sections, header.ViewWithContext(ctx))

	sections = append(sections, components.HorizontalDivider().WithWidth(m.dividerWidth()).ViewWithContext(ctx))

	field := components.NewInput("Project name").
		WithValue(m.nameField.Value()).
		WithPlaceholder(m.nameField.Placeholder).
		WithHint("Lowercase letters, digits and dashes.").
		WithFocus(m.focus == focusInput)
	if fieldErr := m.FieldError(); fieldErr != "" {
		field = field.WithError(fieldErr)
	}
	sections = append(sections, field.ViewWithContext(ctx))

	sections = append(sections, m.renderButtons(ctx))

	if m.lastPressed != "" {
		sections = append(sections, statusStyle.Render(fmt.Sprintf("pressed: %s", m.lastPressed)))
	}

	sections = append(sections, m.renderHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderButtons(ctx components.RenderContext) string {
	var views []string
	for i, role := range galleryRoles {
		button := components.NewButton(roleLabel(role)).
			WithRole(role).
			WithFocus(m.focus == focusFirstButton+i)
		views = append(views, button.ViewWithContext(ctx))
	}
	return joinWithGap(views, 1)
}

func (m Model) renderHelp() string {
	keys := []string{
		keyStyle.Render("tab") + helpStyle.Render(" focus"),
		keyStyle.Render("t") + helpStyle.Render(" theme"),
		keyStyle.Render("enter") + helpStyle.Render(" press"),
		keyStyle.Render("q") + helpStyle.Render(" quit"),
	}
	return helpBarStyle.Render(strings.Join(keys, helpStyle.Render(" • ")))
}

func (m Model) dividerWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 40
}

func joinWithGap(views []string, gap int) string {
	spacer := strings.Repeat(" ", gap)
	var parts []string
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
