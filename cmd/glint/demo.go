package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glintkit/glint/internal/logger"
	"github.com/glintkit/glint/internal/tui"
)

func newDemoCmd(log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive component gallery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("demo requires an interactive terminal; use `glint gallery` for static output")
			}

			log.WithComponent("demo").Debug("starting interactive gallery")
			program := tea.NewProgram(tui.NewModel(), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}

	return cmd
}
