package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVStackJoinsVertically(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("one"), NewText("two")).View()

	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "one")
	assert.Contains(t, lines[1], "two")
}

func TestHStackJoinsHorizontally(t *testing.T) {
	t.Parallel()

	view := HStack(NewText("left"), NewText("right")).View()

	assert.NotContains(t, view, "\n")
	assert.Less(t, strings.Index(view, "left"), strings.Index(view, "right"))
}

func TestStackGapInsertsSpacing(t *testing.T) {
	t.Parallel()

	tight := VStack(NewText("a"), NewText("b")).View()
	spaced := VStack(NewText("a"), NewText("b")).WithGap(1).View()

	assert.Greater(t, strings.Count(spaced, "\n"), strings.Count(tight, "\n"))
}

func TestStackSkipsNilChildren(t *testing.T) {
	t.Parallel()

	view := VStack(nil, NewText("only")).View()
	assert.Contains(t, view, "only")
}

func TestStackEmptyRendersEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, VStack().View())
}

func TestStackAddAppends(t *testing.T) {
	t.Parallel()

	view := VStack(NewText("first")).Add(NewText("second")).View()
	assert.Contains(t, view, "second")
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	view := HorizontalDivider().WithWidth(10).View()
	assert.Contains(t, view, strings.Repeat("─", 10))
}

func TestDividerStyles(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ThickDivider().WithWidth(5).View(), "━━━━━")
	assert.Contains(t, DashedDivider().WithWidth(5).View(), "╌╌╌╌╌")
}

func TestTextTypographyHelpers(t *testing.T) {
	t.Parallel()

	assert.Contains(t, TitleText("Title").View(), "Title")
	assert.Contains(t, CodeText("go test").View(), "go test")
	assert.Equal(t, "plain", NewText("plain").Content())
}
