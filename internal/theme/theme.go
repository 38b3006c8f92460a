// Package theme defines the immutable styling theme consumed by the styling
// engine and the component library. Themes are value types passed explicitly
// through render contexts; nothing in this package holds global state.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a semantic colour slot: a base tone, a content tone that reads
// well on it, and a muted companion for borders and accents. All tones are
// adaptive, carrying light and dark terminal variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette groups the semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// SpacingSize enumerates the spacing scale tokens.
type SpacingSize int

const (
	SpacingNone SpacingSize = iota
	SpacingXS
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
)

const spacingSizeCount = int(SpacingXL) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Padding spacingTable
	Margin  spacingTable
}

// TypographyVariant is a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyBase TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyBody
	TypographyCode
	TypographyEmphasis
	TypographyFaint
)

// TypographyScale contains the semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
	Faint    lipgloss.Style
}

// BorderVariant is a strongly-typed border token.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// FieldState selects which field style an input control renders with.
type FieldState int

const (
	FieldStateDefault FieldState = iota
	FieldStateFocus
	FieldStateInvalid
)

// FieldStyles describes the box styles for input controls per state.
type FieldStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
	Invalid lipgloss.Style
}

// Theme is the complete styling theme. Themes are immutable; derive a new one
// by copying and adjusting fields, then calling Normalize.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Field      FieldStyles
}

// Normalize returns a theme with zero-valued scales replaced by defaults, so
// partially-specified themes stay usable.
func (t Theme) Normalize() Theme {
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingNone: 0,
		SpacingXS:   1,
		SpacingSM:   2,
		SpacingMD:   3,
		SpacingLG:   4,
		SpacingXL:   6,
	}
}

// DefaultTheme returns the built-in light-leaning adaptive theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#2563eb", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#1d4ed8", "#1e40af"),
		},
		Secondary: ColourSet{
			Base:   ac("#9333ea", "#c084fc"),
			OnBase: ac("#faf5ff", "#1f2937"),
			Muted:  ac("#7c3aed", "#6b21a8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f3f4f6"),
			Muted:  ac("#e5e7eb", "#1f2937"),
		},
		Success: ColourSet{
			Base:   ac("#16a34a", "#4ade80"),
			OnBase: ac("#f0fdf4", "#052e16"),
			Muted:  ac("#15803d", "#166534"),
		},
		Warning: ColourSet{
			Base:   ac("#d97706", "#fbbf24"),
			OnBase: ac("#451a03", "#451a03"),
			Muted:  ac("#b45309", "#92400e"),
		},
		Danger: ColourSet{
			Base:   ac("#dc2626", "#f87171"),
			OnBase: ac("#fef2f2", "#450a0a"),
			Muted:  ac("#b91c1c", "#991b1b"),
		},
		Info: ColourSet{
			Base:   ac("#0891b2", "#22d3ee"),
			OnBase: ac("#ecfeff", "#083344"),
			Muted:  ac("#0e7490", "#155e75"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	typography := defaultTypography(palette)

	field := FieldStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Thick).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
		Invalid: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Danger.Base).
			Padding(0, 1).
			Foreground(palette.Surface.OnBase),
	}

	theme := Theme{
		Name:       "default",
		Palette:    palette,
		Borders:    borders,
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: typography,
		Field:      field,
	}

	return theme.Normalize()
}

// DarkTheme returns a variant tuned for dark terminals.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#334155"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}

	theme.Typography = defaultTypography(theme.Palette)
	return theme.Normalize()
}

// BuiltinThemes returns the themes shipped with the kit, keyed by name.
func BuiltinThemes() map[string]Theme {
	return map[string]Theme{
		"default": DefaultTheme(),
		"dark":    DarkTheme(),
	}
}

// RegenerateTypography rebuilds the typography scale from a palette, used
// after palette colours change so presets pick up the new tones.
func RegenerateTypography(p Palette) TypographyScale {
	return defaultTypography(p)
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Neutral.Base).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Faint:    base.Faint(true),
	}
}

// Lookup helpers keyed by typed variants.

// BorderForVariant returns the border definition for the given variant.
func BorderForVariant(t Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderNormal:
		return t.Borders.Normal
	case BorderRounded:
		return t.Borders.Rounded
	case BorderThick:
		return t.Borders.Thick
	case BorderDouble:
		return t.Borders.Double
	default:
		return t.Borders.None
	}
}

// PaddingValue returns the padding cell count for the given size token.
func PaddingValue(t Theme, size SpacingSize) int {
	return spacingLookup(t.Spacing.Padding, size)
}

// MarginValue returns the margin cell count for the given size token.
func MarginValue(t Theme, size SpacingSize) int {
	return spacingLookup(t.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSM)
	}
	return table[index]
}

// TypographyStyle returns the typography preset for the given variant.
func TypographyStyle(t Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyTitle:
		return t.Typography.Title
	case TypographySubtitle:
		return t.Typography.Subtitle
	case TypographyBody:
		return t.Typography.Body
	case TypographyCode:
		return t.Typography.Code
	case TypographyEmphasis:
		return t.Typography.Emphasis
	case TypographyFaint:
		return t.Typography.Faint
	default:
		return t.Typography.Base
	}
}

// FieldStyle returns the input field style for the given state.
func FieldStyle(t Theme, state FieldState) lipgloss.Style {
	switch state {
	case FieldStateFocus:
		return t.Field.Focus
	case FieldStateInvalid:
		return t.Field.Invalid
	default:
		return t.Field.Default
	}
}
