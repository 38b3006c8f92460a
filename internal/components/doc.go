// Package components provides a theme-aware UI component library for
// terminal applications.
//
// Components are pure render functions from props to strings: the same
// component with the same context always produces the same output. Styling
// flows through two layers. Each component declares a variant scheme (see
// internal/variant) mapping its enumerated options to fragment strings, and
// the styling engine (see internal/styling) interprets the resolved fragment
// against the active theme with right-most-wins precedence. Callers can
// append their own fragment with WithOverride; it resolves last, so it takes
// precedence.
//
// All components implement View(), which renders with the default theme, and
// ViewWithContext(ctx) for an explicit theme and width:
//
//	ctx := components.DefaultContext().WithTheme(theme.DarkTheme())
//	out := components.NewButton("Save").
//		WithRole(components.RoleDestructive).
//		WithSize(components.SizeSmall).
//		ViewWithContext(ctx)
//
// Composition happens through the Renderable interface:
//
//	view := components.VStack(
//		components.NewHeader("Dashboard").WithSubtitle("3 pipelines"),
//		components.NewInput("Name").WithHint("lowercase only"),
//	).WithGap(1).View()
package components
