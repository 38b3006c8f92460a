package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// StyleFunc applies a theme-aware transformation to a lipgloss style. It is
// the unit the styling engine composes when interpreting fragment directives.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Apply runs the modifiers against a base style in order.
func Apply(base lipgloss.Style, t Theme, modifiers ...StyleFunc) lipgloss.Style {
	for _, modifier := range modifiers {
		if modifier != nil {
			base = modifier(base, t)
		}
	}
	return base
}

// PaletteSlot selects a semantic colour slot from a palette.
type PaletteSlot func(Palette) ColourSet

// Predefined slots for type-safe palette access.
var (
	SlotPrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	SlotSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	SlotSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	SlotSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	SlotWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	SlotDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	SlotInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	SlotNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a slot's base colour as background with its matching
// content colour as foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour as foreground only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// BorderColour applies a slot's muted colour to the border.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderForeground(slot(t.Palette).Muted)
	}
}

// Border applies a border variant from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(BorderForVariant(t, variant))
	}
}

// PaddingX applies horizontal padding from the theme's spacing scale.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

// PaddingY applies vertical padding from the theme's spacing scale.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

// Padding applies uniform padding from the theme's spacing scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Padding(spacingLookup(t.Spacing.Padding, size))
	}
}

// MarginX applies horizontal margin from the theme's spacing scale.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := spacingLookup(t.Spacing.Margin, size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

// MarginY applies vertical margin from the theme's spacing scale.
func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		value := spacingLookup(t.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography inherits a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(t, variant))
	}
}

// Bold toggles bold rendering.
func Bold(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(on)
	}
}

// Faint toggles faint rendering.
func Faint(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(on)
	}
}

// Italic toggles italic rendering.
func Italic(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Italic(on)
	}
}

// Underline toggles underlined rendering.
func Underline(on bool) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Underline(on)
	}
}

// Align sets horizontal alignment.
func Align(position lipgloss.Position) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Align(position)
	}
}
