// Package styling interprets resolved fragment strings into lipgloss styles.
//
// A fragment string is a whitespace-separated list of directives: key=value
// pairs such as "bg=primary" or "px=md", and bare flags such as "bold". The
// engine applies property-level right-most-wins precedence: when two
// directives target the same property, the later one replaces the earlier.
// Duplicate directives are therefore harmless; the variant resolver never
// deduplicates its output.
//
// One asymmetry is deliberate: "bg" sets the background together with the
// slot's matching content colour, but that content colour is a default, not
// an explicit foreground. An explicit "fg" directive beats it regardless of
// position.
package styling

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/glintkit/glint/internal/theme"
	glinterrors "github.com/glintkit/glint/pkg/errors"
)

var slotNames = map[string]theme.PaletteSlot{
	"primary":   theme.SlotPrimary,
	"secondary": theme.SlotSecondary,
	"surface":   theme.SlotSurface,
	"success":   theme.SlotSuccess,
	"warning":   theme.SlotWarning,
	"danger":    theme.SlotDanger,
	"info":      theme.SlotInfo,
	"neutral":   theme.SlotNeutral,
}

var borderNames = map[string]theme.BorderVariant{
	"none":    theme.BorderNone,
	"normal":  theme.BorderNormal,
	"rounded": theme.BorderRounded,
	"thick":   theme.BorderThick,
	"double":  theme.BorderDouble,
}

var sizeNames = map[string]theme.SpacingSize{
	"none": theme.SpacingNone,
	"xs":   theme.SpacingXS,
	"sm":   theme.SpacingSM,
	"md":   theme.SpacingMD,
	"lg":   theme.SpacingLG,
	"xl":   theme.SpacingXL,
}

var alignNames = map[string]lipgloss.Position{
	"left":   lipgloss.Left,
	"center": lipgloss.Center,
	"right":  lipgloss.Right,
}

var flagNames = map[string]struct{}{
	"bold":      {},
	"faint":     {},
	"italic":    {},
	"underline": {},
}

// applyOrder fixes the order properties hit the style. Backgrounds apply
// before foregrounds so an explicit fg wins over the one bg implies.
var applyOrder = []string{
	"border", "bc", "px", "py", "mx", "my", "align",
	"bg", "fg", "bold", "faint", "italic", "underline",
}

// Engine turns resolved fragment strings into theme-aware styles. It is
// stateless and safe for concurrent use.
type Engine struct{}

// NewEngine creates a styling engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Style interprets the resolved fragment string against the theme. Directives
// outside the engine's grammar yield an *errors.InvalidVariantError naming
// the offending directive.
func (e *Engine) Style(t theme.Theme, resolved string) (lipgloss.Style, error) {
	modifiers, err := e.compile(resolved)
	if err != nil {
		return lipgloss.Style{}, err
	}

	style := lipgloss.NewStyle()
	for _, property := range applyOrder {
		if modifier, ok := modifiers[property]; ok {
			style = modifier(style, t)
		}
	}
	return style, nil
}

// MustStyle is Style for fragment strings known valid at compile time.
func (e *Engine) MustStyle(t theme.Theme, resolved string) lipgloss.Style {
	style, err := e.Style(t, resolved)
	if err != nil {
		panic(err)
	}
	return style
}

// compile reduces the token stream to one modifier per property, keeping the
// right-most directive for each.
func (e *Engine) compile(resolved string) (map[string]theme.StyleFunc, error) {
	modifiers := make(map[string]theme.StyleFunc)

	for _, token := range strings.Fields(resolved) {
		// "pad" spans both padding axes. Split it here so right-most-wins
		// holds per property: a later px or py replaces only its half, and
		// a later pad replaces both.
		if value, ok := strings.CutPrefix(token, "pad="); ok {
			size, known := sizeNames[value]
			if !known {
				return nil, glinterrors.NewInvalidVariantError("pad", value, nameList(sizeNames))
			}
			modifiers["px"] = theme.PaddingX(size)
			modifiers["py"] = theme.PaddingY(size)
			continue
		}

		property, modifier, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		modifiers[property] = modifier
	}
	return modifiers, nil
}

func parseToken(token string) (string, theme.StyleFunc, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		if _, ok := flagNames[token]; !ok {
			return "", nil, glinterrors.NewInvalidVariantError("directive", token, nil)
		}
		return token, flagModifier(token), nil
	}

	switch key {
	case "bg":
		slot, ok := slotNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, slotList())
		}
		return key, theme.Background(slot), nil
	case "fg":
		slot, ok := slotNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, slotList())
		}
		return key, theme.Foreground(slot), nil
	case "bc":
		slot, ok := slotNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, slotList())
		}
		return key, theme.BorderColour(slot), nil
	case "border":
		variant, ok := borderNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(borderNames))
		}
		return key, theme.Border(variant), nil
	case "px":
		size, ok := sizeNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(sizeNames))
		}
		return key, theme.PaddingX(size), nil
	case "py":
		size, ok := sizeNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(sizeNames))
		}
		return key, theme.PaddingY(size), nil
	case "mx":
		size, ok := sizeNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(sizeNames))
		}
		return key, theme.MarginX(size), nil
	case "my":
		size, ok := sizeNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(sizeNames))
		}
		return key, theme.MarginY(size), nil
	case "align":
		position, ok := alignNames[value]
		if !ok {
			return "", nil, glinterrors.NewInvalidVariantError(key, value, nameList(alignNames))
		}
		return key, theme.Align(position), nil
	default:
		return "", nil, glinterrors.NewInvalidVariantError("directive", token, nil)
	}
}

func flagModifier(flag string) theme.StyleFunc {
	switch flag {
	case "bold":
		return theme.Bold(true)
	case "faint":
		return theme.Faint(true)
	case "italic":
		return theme.Italic(true)
	default:
		return theme.Underline(true)
	}
}

func slotList() []string {
	return nameList(slotNames)
}

// nameList returns sorted keys so error messages stay deterministic.
func nameList[V any](names map[string]V) []string {
	list := lo.Keys(names)
	sort.Strings(list)
	return list
}
