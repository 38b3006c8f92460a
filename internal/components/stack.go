package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction of a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	children  []Renderable
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return &Stack{children: children, direction: DirectionVertical}
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return &Stack{children: children, direction: DirectionHorizontal}
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack against the given context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := renderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, s.withGaps(views, strings.Repeat(" ", s.gap))...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.withGaps(views, strings.Repeat("\n", s.gap))...)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap == 0 || len(views) < 2 {
		return views
	}
	spaced := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			spaced = append(spaced, spacer)
		}
		spaced = append(spaced, view)
	}
	return spaced
}
