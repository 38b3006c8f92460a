package tui

import (
	"regexp"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/glintkit/glint/internal/components"
	"github.com/glintkit/glint/internal/theme"
)

// focusable identifies the interactive regions of the gallery, in tab order.
// The name field comes first, then one slot per button role.
const (
	focusInput       = 0
	focusFirstButton = 1
)

var galleryRoles = []components.ButtonRole{
	components.RoleDefault,
	components.RoleDestructive,
	components.RoleSuccess,
	components.RoleOutline,
	components.RoleSecondary,
	components.RoleGhost,
	components.RoleLink,
}

var namePattern = regexp.MustCompile(`^[a-z0-9-]*$`)

// Model contains the Bubbletea state for the interactive gallery.
type Model struct {
	themes      map[string]theme.Theme
	themeNames  []string
	themeIndex  int
	nameField   textinput.Model
	focus       int
	width       int
	lastPressed string
	quitting    bool
}

// NewModel constructs the gallery model with the built-in themes.
func NewModel() Model {
	themes := theme.BuiltinThemes()
	names := lo.Keys(themes)
	sort.Strings(names)

	field := textinput.New()
	field.Placeholder = "my-project"
	field.CharLimit = 32
	field.Focus()

	// Start on the default theme regardless of where sorting puts it.
	themeIndex := lo.IndexOf(names, theme.DefaultTheme().Name)
	if themeIndex < 0 {
		themeIndex = 0
	}

	return Model{
		themes:     themes,
		themeNames: names,
		themeIndex: themeIndex,
		nameField:  field,
		focus:      focusInput,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Theme returns the currently selected theme.
func (m Model) Theme() theme.Theme {
	return m.themes[m.themeNames[m.themeIndex]]
}

// ThemeName returns the name of the currently selected theme.
func (m Model) ThemeName() string {
	return m.themeNames[m.themeIndex]
}

// FieldError reports the validation problem with the name field, or "" when
// the value is acceptable.
func (m Model) FieldError() string {
	if !namePattern.MatchString(m.nameField.Value()) {
		return "Only lowercase letters, digits and dashes are allowed."
	}
	return ""
}

func (m Model) focusCount() int {
	return focusFirstButton + len(galleryRoles)
}

func (m Model) focusedRole() (components.ButtonRole, bool) {
	if m.focus < focusFirstButton {
		return 0, false
	}
	return galleryRoles[m.focus-focusFirstButton], true
}
