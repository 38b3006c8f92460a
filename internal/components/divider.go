package components

import (
	"strings"

	"github.com/glintkit/glint/internal/theme"
)

// Divider renders a horizontal rule.
type Divider struct {
	width int
	char  string
}

// HorizontalDivider creates a divider with a light line.
func HorizontalDivider() *Divider {
	return &Divider{width: 40, char: "─"}
}

// ThickDivider creates a divider with a heavy line.
func ThickDivider() *Divider {
	return &Divider{width: 40, char: "━"}
}

// DashedDivider creates a divider with a dashed line.
func DashedDivider() *Divider {
	return &Divider{width: 40, char: "╌"}
}

// WithWidth sets the divider width in cells.
func (d *Divider) WithWidth(width int) *Divider {
	if width > 0 {
		d.width = width
	}
	return d
}

// View renders the divider with the default theme.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider against the given context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	line := strings.Repeat(d.char, d.width)
	return theme.TypographyStyle(ctx.Theme, theme.TypographyFaint).Render(line)
}
