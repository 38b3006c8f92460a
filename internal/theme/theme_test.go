package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, "#2563eb", theme.Palette.Primary.Base.Light)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSM])
	assert.True(t, theme.Typography.Title.GetBold(), "title typography should be bold")
	assert.NotEqual(t, lipgloss.Style{}, theme.Field.Default, "field default style should be set")
}

func TestDarkThemeDiffersFromDefault(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, "dark", dark.Name)
	assert.NotEqual(t, light.Palette.Surface.Base.Light, dark.Palette.Surface.Base.Light, "dark theme should invert surface base")
}

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()
	assert.Contains(t, themes, "default")
	assert.Contains(t, themes, "dark")
}

func TestNormalizeFillsZeroSpacing(t *testing.T) {
	var theme Theme
	theme = theme.Normalize()

	assert.Equal(t, 2, theme.Spacing.Padding[SpacingSM])
	assert.Equal(t, 3, theme.Spacing.Margin[SpacingMD])
}

func TestBorderForVariant(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, lipgloss.NormalBorder(), BorderForVariant(theme, BorderNormal))
	assert.Equal(t, lipgloss.DoubleBorder(), BorderForVariant(theme, BorderDouble))
	assert.Equal(t, lipgloss.Border{}, BorderForVariant(theme, BorderNone))
}

func TestSpacingLookupClampsOutOfRange(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, PaddingValue(theme, SpacingSM), PaddingValue(theme, SpacingSize(99)))
	assert.Equal(t, 0, MarginValue(theme, SpacingNone))
}

func TestTypographyStyle(t *testing.T) {
	theme := DefaultTheme()

	assert.True(t, TypographyStyle(theme, TypographyEmphasis).GetBold())
	assert.True(t, TypographyStyle(theme, TypographyFaint).GetFaint())
}

func TestFieldStyle(t *testing.T) {
	theme := DefaultTheme()

	focus := FieldStyle(theme, FieldStateFocus).Render("value")
	normal := FieldStyle(theme, FieldStateDefault).Render("value")
	invalid := FieldStyle(theme, FieldStateInvalid).Render("value")

	assert.NotEqual(t, normal, focus, "focus rendering should differ from default")
	assert.NotEqual(t, normal, invalid, "invalid rendering should differ from default")
}
