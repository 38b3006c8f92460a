package main

import (
	"github.com/spf13/cobra"

	"github.com/glintkit/glint/internal/logger"
)

type rootFlags struct {
	verbose   bool
	themeName string
	themeFile string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint renders themed terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themeName, "theme", "default", "Built-in theme to render with")
	cmd.PersistentFlags().StringVar(&flags.themeFile, "theme-file", "", "Path to a YAML theme file (overrides --theme)")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newDemoCmd(log))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
