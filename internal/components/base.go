package components

import (
	"github.com/glintkit/glint/internal/styling"
	"github.com/glintkit/glint/internal/theme"
)

// Renderable is anything that can render itself to a string.
type Renderable interface {
	View() string
}

// ContextualRenderable is a component that can receive a render context.
// Most call sites only need Renderable.
type ContextualRenderable interface {
	Renderable
	ViewWithContext(ctx RenderContext) string
}

// RenderContext carries the theme and layout information components render
// against. Contexts are value types; deriving one never mutates the parent.
type RenderContext struct {
	Theme theme.Theme
	Width int
}

// DefaultContext returns a context with the default theme and no width hint.
func DefaultContext() RenderContext {
	return RenderContext{Theme: theme.DefaultTheme()}
}

// WithTheme returns a context using the given theme.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = t
	return r
}

// WithWidth returns a context with a width hint for layout-aware components.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// engine is the shared styling engine. It is stateless, so one instance
// serves every component.
var engine = styling.NewEngine()

// renderChild renders a child, passing context through when supported.
func renderChild(child Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
