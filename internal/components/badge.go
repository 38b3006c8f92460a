package components

import (
	"github.com/glintkit/glint/internal/variant"
)

// BadgeVariant selects the visual style of a badge.
type BadgeVariant int

const (
	BadgeDefault BadgeVariant = iota
	BadgePrimary
	BadgeSuccess
	BadgeWarning
	BadgeError
	BadgeInfo
)

var badgeVariantNames = map[BadgeVariant]string{
	BadgeDefault: "default",
	BadgePrimary: "primary",
	BadgeSuccess: "success",
	BadgeWarning: "warning",
	BadgeError:   "error",
	BadgeInfo:    "info",
}

var badgeScheme = variant.NewScheme("px=sm").
	WithAxis("tone", "default", map[string]string{
		"default": "bg=neutral",
		"primary": "bg=primary",
		"success": "bg=success",
		"warning": "bg=warning",
		"error":   "bg=danger",
		"info":    "bg=info",
	})

// BadgeScheme exposes the badge's variant scheme for programmatic resolution.
func BadgeScheme() *variant.Scheme {
	return badgeScheme
}

// Badge is a small inline status indicator.
type Badge struct {
	text     string
	variant  BadgeVariant
	override string
}

// NewBadge creates a badge with the default variant.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(v BadgeVariant) *Badge {
	b.variant = v
	return b
}

// WithOverride appends a caller fragment resolved after the variant axis.
func (b *Badge) WithOverride(fragment string) *Badge {
	b.override = fragment
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string { return b.text }

// View renders the badge with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge against the given context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	resolved := badgeScheme.MustResolve(map[string]string{"tone": badgeVariantNames[b.variant]}, b.override)
	return engine.MustStyle(ctx.Theme, resolved).Render(b.text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeSuccess)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeInfo)
}
