// Package variant implements style variant resolution: mapping a set of
// enumerated style axes to a single whitespace-joined fragment string.
//
// A Scheme declares a base fragment applied unconditionally plus an ordered
// list of axes. Each axis carries a closed map of value names to fragments
// and a default value used when the caller leaves the axis unset. Resolution
// concatenates the base fragment, each axis's selected fragment in declared
// axis order, and an optional caller override appended last so it wins under
// the styling engine's right-most-wins rule.
//
// Resolution is pure: the same scheme, selections, and override always yield
// the same string. Fragments are opaque here; interpreting them is the
// styling engine's job.
package variant

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	glinterrors "github.com/glintkit/glint/pkg/errors"
)

// Axis is one declared dimension of visual variation.
type Axis struct {
	name     string
	fallback string
	values   map[string]string
}

// Name returns the axis name.
func (a Axis) Name() string { return a.name }

// Default returns the value selected when the axis is left unset.
func (a Axis) Default() string { return a.fallback }

// Values returns the declared value names in sorted order.
func (a Axis) Values() []string {
	values := lo.Keys(a.values)
	sort.Strings(values)
	return values
}

// Scheme declares the variant space for one component: a base fragment plus
// ordered axes. Schemes are built once at package init and never mutated
// afterwards, so they are safe for concurrent use.
type Scheme struct {
	base string
	axes []Axis
}

// NewScheme creates a scheme with the given base fragment.
func NewScheme(base string) *Scheme {
	return &Scheme{base: base}
}

// WithAxis declares an axis with its default value and value-to-fragment map.
// Axes resolve in declaration order. Redeclaring an axis name replaces the
// earlier declaration.
func (s *Scheme) WithAxis(name, fallback string, values map[string]string) *Scheme {
	axis := Axis{name: name, fallback: fallback, values: values}
	for i, existing := range s.axes {
		if existing.name == name {
			s.axes[i] = axis
			return s
		}
	}
	s.axes = append(s.axes, axis)
	return s
}

// Axes returns the declared axes in resolution order.
func (s *Scheme) Axes() []Axis {
	axes := make([]Axis, len(s.axes))
	copy(axes, s.axes)
	return axes
}

// Axis returns the declared axis with the given name.
func (s *Scheme) Axis(name string) (Axis, bool) {
	for _, axis := range s.axes {
		if axis.name == name {
			return axis, true
		}
	}
	return Axis{}, false
}

// Resolve produces the final fragment string for the given selections.
// Selections need not cover every axis; missing axes use the axis default.
// An unknown axis name or a value outside an axis's declared enumeration
// yields an *errors.InvalidVariantError. An empty override is omitted.
func (s *Scheme) Resolve(selections map[string]string, override string) (string, error) {
	if err := s.checkSelections(selections); err != nil {
		return "", err
	}

	parts := make([]string, 0, len(s.axes)+2)
	if s.base != "" {
		parts = append(parts, s.base)
	}

	for _, axis := range s.axes {
		value, ok := selections[axis.name]
		if !ok {
			value = axis.fallback
		}
		fragment, ok := axis.values[value]
		if !ok {
			return "", glinterrors.NewInvalidVariantError(axis.name, value, axis.Values())
		}
		if fragment != "" {
			parts = append(parts, fragment)
		}
	}

	if override = strings.TrimSpace(override); override != "" {
		parts = append(parts, override)
	}

	return strings.Join(parts, " "), nil
}

// MustResolve is Resolve for callers whose selections are restricted to the
// declared enumeration at compile time. It panics on an invalid selection.
func (s *Scheme) MustResolve(selections map[string]string, override string) string {
	resolved, err := s.Resolve(selections, override)
	if err != nil {
		panic(err)
	}
	return resolved
}

// checkSelections rejects axis names the scheme never declared. Keys are
// visited in sorted order so the reported axis is deterministic.
func (s *Scheme) checkSelections(selections map[string]string) error {
	if len(selections) == 0 {
		return nil
	}

	names := lo.Keys(selections)
	sort.Strings(names)

	for _, name := range names {
		if _, ok := s.Axis(name); !ok {
			return glinterrors.NewInvalidVariantError(name, "", nil)
		}
	}
	return nil
}
