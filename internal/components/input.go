package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/glintkit/glint/internal/theme"
)

// HelperState identifies what the input's helper region shows. The states
// are mutually exclusive and recomputed fresh on every render.
type HelperState int

const (
	HelperNone HelperState = iota
	HelperHint
	HelperError
)

// Input is a labeled form field with an optional hint and error. An error
// always displaces the hint.
type Input struct {
	label       string
	value       string
	placeholder string
	hint        string
	errorText   string
	focused     bool
	width       int
}

// NewInput creates an input with the given label.
func NewInput(label string) *Input {
	return &Input{label: label}
}

// WithValue sets the current value.
func (in *Input) WithValue(value string) *Input {
	in.value = value
	return in
}

// WithPlaceholder sets the text shown while the value is empty.
func (in *Input) WithPlaceholder(placeholder string) *Input {
	in.placeholder = placeholder
	return in
}

// WithHint sets the helper text shown when no error is present.
func (in *Input) WithHint(hint string) *Input {
	in.hint = hint
	return in
}

// WithError sets the error text. A non-empty error displaces the hint.
func (in *Input) WithError(errorText string) *Input {
	in.errorText = errorText
	return in
}

// WithFocus sets the focus state.
func (in *Input) WithFocus(focused bool) *Input {
	in.focused = focused
	return in
}

// WithWidth sets the field width; helper text wraps to it.
func (in *Input) WithWidth(width int) *Input {
	in.width = width
	return in
}

// Label returns the input label.
func (in *Input) Label() string { return in.label }

// Value returns the current value.
func (in *Input) Value() string { return in.value }

// HelperState reports which helper the input would display right now:
// a non-empty error wins, then a non-empty hint, then nothing.
func (in *Input) HelperState() HelperState {
	switch {
	case in.errorText != "":
		return HelperError
	case in.hint != "":
		return HelperHint
	default:
		return HelperNone
	}
}

// View renders the input with the default theme.
func (in *Input) View() string {
	return in.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input against the given context.
func (in *Input) ViewWithContext(ctx RenderContext) string {
	label := theme.TypographyStyle(ctx.Theme, theme.TypographyEmphasis).Render(in.label)

	rows := []string{label, in.renderField(ctx)}
	if helper := in.renderHelper(ctx); helper != "" {
		rows = append(rows, helper)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (in *Input) renderField(ctx RenderContext) string {
	state := theme.FieldStateDefault
	switch {
	case in.errorText != "":
		state = theme.FieldStateInvalid
	case in.focused:
		state = theme.FieldStateFocus
	}

	style := theme.FieldStyle(ctx.Theme, state)
	if in.width > 0 {
		style = style.Width(in.width)
	}

	content := in.value
	if content == "" && in.placeholder != "" {
		return style.Render(theme.TypographyStyle(ctx.Theme, theme.TypographyFaint).Render(in.placeholder))
	}
	return style.Render(content)
}

func (in *Input) renderHelper(ctx RenderContext) string {
	var text string
	var style lipgloss.Style

	switch in.HelperState() {
	case HelperError:
		text = in.errorText
		style = lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Danger.Base)
	case HelperHint:
		text = in.hint
		style = theme.TypographyStyle(ctx.Theme, theme.TypographyFaint)
	default:
		return ""
	}

	if in.width > 0 {
		text = wordwrap.String(text, in.width)
	}
	return style.Render(text)
}
