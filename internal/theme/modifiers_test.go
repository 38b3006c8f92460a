package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplyChainsModifiers(t *testing.T) {
	theme := DefaultTheme()

	style := Apply(
		lipgloss.NewStyle(),
		theme,
		Background(SlotPrimary),
		PaddingX(SpacingMD),
		Border(BorderRounded),
	)

	assert.NotEmpty(t, style.GetBackground(), "expected background to be set")
	assert.True(t, style.GetPaddingLeft() > 0, "expected padding to be applied")
}

func TestApplySkipsNilModifiers(t *testing.T) {
	theme := DefaultTheme()
	style := Apply(lipgloss.NewStyle(), theme, nil, Bold(true))
	assert.True(t, style.GetBold())
}

func TestBackgroundSetsMatchingForeground(t *testing.T) {
	theme := DefaultTheme()
	style := Apply(lipgloss.NewStyle(), theme, Background(SlotDanger))

	assert.Equal(t, theme.Palette.Danger.Base, style.GetBackground())
	assert.Equal(t, theme.Palette.Danger.OnBase, style.GetForeground())
}

func TestForegroundLeavesBackground(t *testing.T) {
	theme := DefaultTheme()
	style := Apply(lipgloss.NewStyle(), theme, Foreground(SlotSuccess))

	assert.Equal(t, theme.Palette.Success.Base, style.GetForeground())
	assert.Empty(t, style.GetBackground())
}

func TestUniformPaddingCoversAllSides(t *testing.T) {
	theme := DefaultTheme()
	style := Apply(lipgloss.NewStyle(), theme, Padding(SpacingSM))

	assert.Equal(t, style.GetPaddingLeft(), style.GetPaddingTop())
	assert.True(t, style.GetPaddingBottom() > 0)
}

func TestPaletteSlots(t *testing.T) {
	palette := DefaultTheme().Palette

	assert.Equal(t, palette.Primary, SlotPrimary(palette))
	assert.Equal(t, palette.Neutral, SlotNeutral(palette))
	assert.NotEmpty(t, palette.Secondary.Base.Dark, "secondary dark tone should be set")
}

func TestTypographyModifierInherits(t *testing.T) {
	theme := DefaultTheme()
	style := Apply(lipgloss.NewStyle(), theme, Typography(TypographyTitle))
	assert.True(t, style.GetBold(), "title typography should be bold")
}

func TestFlagModifiers(t *testing.T) {
	theme := DefaultTheme()

	style := Apply(lipgloss.NewStyle(), theme, Bold(true), Faint(true), Italic(true), Underline(true))
	assert.True(t, style.GetBold())
	assert.True(t, style.GetFaint())
	assert.True(t, style.GetItalic())
	assert.True(t, style.GetUnderline())
}
