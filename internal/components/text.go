package components

import (
	"github.com/glintkit/glint/internal/theme"
)

// Text renders a string with a typography preset.
type Text struct {
	content string
	variant theme.TypographyVariant
}

// NewText creates a text component with base typography.
func NewText(content string) *Text {
	return &Text{content: content, variant: theme.TypographyBase}
}

// WithTypography sets the typography preset.
func (t *Text) WithTypography(variant theme.TypographyVariant) *Text {
	t.variant = variant
	return t
}

// Content returns the text content.
func (t *Text) Content() string { return t.content }

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text against the given context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return theme.TypographyStyle(ctx.Theme, t.variant).Render(t.content)
}

// TitleText creates title-styled text.
func TitleText(content string) *Text {
	return NewText(content).WithTypography(theme.TypographyTitle)
}

// SubtitleText creates subtitle-styled text.
func SubtitleText(content string) *Text {
	return NewText(content).WithTypography(theme.TypographySubtitle)
}

// EmphasisText creates emphasized text.
func EmphasisText(content string) *Text {
	return NewText(content).WithTypography(theme.TypographyEmphasis)
}

// CodeText creates code-styled text.
func CodeText(content string) *Text {
	return NewText(content).WithTypography(theme.TypographyCode)
}

// FaintText creates faint text.
func FaintText(content string) *Text {
	return NewText(content).WithTypography(theme.TypographyFaint)
}
