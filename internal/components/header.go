package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintkit/glint/internal/theme"
)

// Header is a two-region page heading: a title block on the left and an
// optional caller-supplied action region on the right. The action region is
// an opaque Renderable; the header arranges it without interpreting it.
//
// The title is required by contract. It is not validated here; an empty
// title simply renders an empty title block.
type Header struct {
	title    string
	subtitle string
	actions  Renderable
	width    int
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	return &Header{title: title}
}

// WithSubtitle adds a subtitle rendered directly under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithActions injects the action region. The payload renders verbatim.
func (h *Header) WithActions(actions Renderable) *Header {
	h.actions = actions
	return h
}

// WithWidth sets the width the action region is right-aligned against. The
// width is a minimum: when title and actions together exceed it, the line
// overflows with a single-space gap rather than truncating.
func (h *Header) WithWidth(width int) *Header {
	h.width = width
	return h
}

// Title returns the header title.
func (h *Header) Title() string { return h.title }

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string { return h.subtitle }

// View renders the header with the default theme.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header against the given context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	titleBlock := theme.TypographyStyle(ctx.Theme, theme.TypographyTitle).Render(h.title)
	if h.subtitle != "" {
		subtitle := theme.TypographyStyle(ctx.Theme, theme.TypographySubtitle).Render(h.subtitle)
		titleBlock = lipgloss.JoinVertical(lipgloss.Left, titleBlock, subtitle)
	}

	if h.actions == nil {
		return titleBlock
	}

	actionBlock := renderChild(h.actions, ctx)

	width := h.width
	if width == 0 {
		width = ctx.Width
	}

	gap := 2
	if width > 0 {
		gap = width - lipgloss.Width(titleBlock) - lipgloss.Width(actionBlock)
		if gap < 1 {
			gap = 1
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleBlock,
		strings.Repeat(" ", gap),
		actionBlock,
	)
}
