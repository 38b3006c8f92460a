package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/glintkit/glint/internal/config"
	"github.com/glintkit/glint/internal/theme"
)

type themesOptions struct {
	checkFile string
}

func newThemesCmd() *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes or validate a theme file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.checkFile != "" {
				return runThemeCheck(cmd, opts.checkFile)
			}
			return runThemesList(cmd)
		},
	}

	cmd.Flags().StringVar(&opts.checkFile, "check", "", "Validate a YAML theme file instead of listing built-ins")

	return cmd
}

func runThemesList(cmd *cobra.Command) error {
	builtins := theme.BuiltinThemes()
	names := lo.Keys(builtins)
	sort.Strings(names)

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPRIMARY (LIGHT)\tPRIMARY (DARK)")
	for _, name := range names {
		primary := builtins[name].Palette.Primary.Base
		fmt.Fprintf(writer, "%s\t%s\t%s\n", name, primary.Light, primary.Dark)
	}
	return writer.Flush()
}

func runThemeCheck(cmd *cobra.Command, path string) error {
	loaded, err := config.LoadTheme(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid theme %q (base primary %s)\n", path, loaded.Name, loaded.Palette.Primary.Base.Light)
	return nil
}
