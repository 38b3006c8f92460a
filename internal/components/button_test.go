package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtonFragmentIncludesBaseAndAxes(t *testing.T) {
	t.Parallel()

	fragment := NewButton("Save").Fragment()

	assert.Contains(t, fragment, "align=center bold")
	assert.Contains(t, fragment, "bg=primary")
	assert.Contains(t, fragment, "px=md")
}

func TestButtonFragmentPerRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     ButtonRole
		expected string
	}{
		{"default", RoleDefault, "bg=primary"},
		{"destructive", RoleDestructive, "bg=danger"},
		{"success", RoleSuccess, "bg=success"},
		{"outline", RoleOutline, "border=normal"},
		{"secondary", RoleSecondary, "bg=secondary"},
		{"ghost", RoleGhost, "fg=primary"},
		{"link", RoleLink, "underline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fragment := NewButton("x").WithRole(tt.role).Fragment()
			assert.Contains(t, fragment, tt.expected)
		})
	}
}

func TestButtonOverrideResolvesLast(t *testing.T) {
	t.Parallel()

	fragment := NewButton("Save").WithOverride("bg=surface").Fragment()
	assert.True(t, strings.HasSuffix(fragment, "bg=surface"), "override must be the right-most fragment, got %q", fragment)
}

func TestButtonSizesChangeWidth(t *testing.T) {
	t.Parallel()

	small := NewButton("OK").WithSize(SizeSmall).View()
	large := NewButton("OK").WithSize(SizeLarge).View()

	assert.Less(t, lipgloss.Width(small), lipgloss.Width(large), "larger size should add horizontal padding")
}

func TestButtonFocusAddsBorder(t *testing.T) {
	t.Parallel()

	normal := NewButton("Save").View()
	focused := NewButton("Save").WithFocus(true).View()

	assert.NotEqual(t, normal, focused)
	assert.Contains(t, focused, "┏", "focused button should carry a thick border")
}

func TestButtonDisabledSuppressesFocusBorder(t *testing.T) {
	t.Parallel()

	view := NewButton("Save").WithDisabled(true).WithFocus(true).View()
	assert.NotContains(t, view, "┏")
}

func TestButtonRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	button := NewButton("Apply").WithRole(RoleOutline).WithSize(SizeLarge)
	require.Equal(t, button.View(), button.View())
}

func TestButtonConvenienceConstructors(t *testing.T) {
	t.Parallel()

	assert.Contains(t, DestructiveButton("x").Fragment(), "bg=danger")
	assert.Contains(t, OutlineButton("x").Fragment(), "border=normal")
	assert.Contains(t, GhostButton("x").Fragment(), "fg=primary")
	assert.Contains(t, LinkButton("x").Fragment(), "underline")
}

func TestButtonSchemeResolvesByName(t *testing.T) {
	t.Parallel()

	resolved, err := ButtonScheme().Resolve(map[string]string{"role": "link", "size": "small"}, "")
	require.NoError(t, err)
	assert.Contains(t, resolved, "underline")
	assert.Contains(t, resolved, "px=sm")

	_, err = ButtonScheme().Resolve(map[string]string{"role": "rainbow"}, "")
	require.Error(t, err)
}
