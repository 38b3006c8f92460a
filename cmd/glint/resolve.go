package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/glintkit/glint/internal/components"
	"github.com/glintkit/glint/internal/variant"
)

type resolveOptions struct {
	selections []string
	override   string
	showAxes   bool
}

func componentSchemes() map[string]*variant.Scheme {
	return map[string]*variant.Scheme{
		"button": components.ButtonScheme(),
		"badge":  components.BadgeScheme(),
	}
}

func newResolveCmd() *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Resolve a component's styling fragment from axis selections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.selections, "set", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.override, "override", "", "Fragment appended after all axis fragments")
	cmd.Flags().BoolVar(&opts.showAxes, "axes", false, "List the component's axes instead of resolving")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions, name string) error {
	schemes := componentSchemes()
	scheme, ok := schemes[name]
	if !ok {
		known := lo.Keys(schemes)
		sort.Strings(known)
		return fmt.Errorf("unknown component %q (known: %s)", name, strings.Join(known, ", "))
	}

	if opts.showAxes {
		return renderAxes(cmd, scheme)
	}

	selections, err := parseSelections(opts.selections)
	if err != nil {
		return err
	}

	resolved, err := scheme.Resolve(selections, opts.override)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resolved)
	return nil
}

func renderAxes(cmd *cobra.Command, scheme *variant.Scheme) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "AXIS\tDEFAULT\tVALUES")
	for _, axis := range scheme.Axes() {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", axis.Name(), axis.Default(), strings.Join(axis.Values(), ", "))
	}
	return writer.Flush()
}

func parseSelections(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	selections := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q: expected axis=value", pair)
		}
		selections[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return selections, nil
}
