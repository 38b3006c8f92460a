package components

import (
	"github.com/glintkit/glint/internal/theme"
	"github.com/glintkit/glint/internal/variant"
)

// ButtonRole selects the visual role of a button.
type ButtonRole int

const (
	RoleDefault ButtonRole = iota
	RoleDestructive
	RoleSuccess
	RoleOutline
	RoleSecondary
	RoleGhost
	RoleLink
)

// ButtonSize selects the size of a button.
type ButtonSize int

const (
	SizeDefault ButtonSize = iota
	SizeSmall
	SizeLarge
	SizeIcon
)

var buttonRoleNames = map[ButtonRole]string{
	RoleDefault:     "default",
	RoleDestructive: "destructive",
	RoleSuccess:     "success",
	RoleOutline:     "outline",
	RoleSecondary:   "secondary",
	RoleGhost:       "ghost",
	RoleLink:        "link",
}

var buttonSizeNames = map[ButtonSize]string{
	SizeDefault: "default",
	SizeSmall:   "small",
	SizeLarge:   "large",
	SizeIcon:    "icon",
}

// buttonScheme declares the button's variant space. Roles resolve before
// sizes, and caller overrides resolve last.
var buttonScheme = variant.NewScheme("align=center bold").
	WithAxis("role", "default", map[string]string{
		"default":     "bg=primary",
		"destructive": "bg=danger",
		"success":     "bg=success",
		"outline":     "border=normal bc=neutral fg=primary",
		"secondary":   "bg=secondary",
		"ghost":       "fg=primary",
		"link":        "fg=primary underline",
	}).
	WithAxis("size", "default", map[string]string{
		"default": "px=md",
		"small":   "px=sm",
		"large":   "px=lg py=xs",
		"icon":    "px=xs",
	})

// ButtonScheme exposes the button's variant scheme, primarily so external
// callers (the CLI's resolve command, tests) can resolve selections by name.
func ButtonScheme() *variant.Scheme {
	return buttonScheme
}

// Button is a visual button component.
type Button struct {
	label    string
	role     ButtonRole
	size     ButtonSize
	disabled bool
	focused  bool
	override string
}

// NewButton creates a button with the default role and size.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// WithRole sets the visual role.
func (b *Button) WithRole(role ButtonRole) *Button {
	b.role = role
	return b
}

// WithSize sets the size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocus sets the focus state.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// WithOverride appends a caller fragment after every axis fragment, so its
// directives take precedence under the engine's right-most-wins rule.
func (b *Button) WithOverride(fragment string) *Button {
	b.override = fragment
	return b
}

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// Fragment returns the resolved fragment string for the current options.
// Role and size are closed enums, so resolution cannot fail here.
func (b *Button) Fragment() string {
	return buttonScheme.MustResolve(map[string]string{
		"role": buttonRoleNames[b.role],
		"size": buttonSizeNames[b.size],
	}, b.override)
}

// View renders the button with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button against the given context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := engine.MustStyle(ctx.Theme, b.Fragment())

	// State styling layers on top of the resolved variant.
	if b.disabled {
		style = style.Faint(true)
	} else if b.focused {
		style = style.
			Border(theme.BorderForVariant(ctx.Theme, theme.BorderThick)).
			BorderForeground(ctx.Theme.Palette.Primary.Base)
	}

	return style.Render(b.label)
}

// Convenience constructors for common roles.

// DestructiveButton creates a button with the destructive role.
func DestructiveButton(label string) *Button {
	return NewButton(label).WithRole(RoleDestructive)
}

// OutlineButton creates a button with the outline role.
func OutlineButton(label string) *Button {
	return NewButton(label).WithRole(RoleOutline)
}

// GhostButton creates a button with the ghost role.
func GhostButton(label string) *Button {
	return NewButton(label).WithRole(RoleGhost)
}

// LinkButton creates a button with the link role.
func LinkButton(label string) *Button {
	return NewButton(label).WithRole(RoleLink)
}
