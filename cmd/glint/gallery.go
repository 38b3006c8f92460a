package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glintkit/glint/internal/components"
	"github.com/glintkit/glint/internal/logger"
	"github.com/glintkit/glint/internal/theme"
)

type galleryOptions struct {
	width int
}

func newGalleryCmd(rootFlags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &galleryOptions{}

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print a static showcase of every component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := resolveTheme(rootFlags)
			if err != nil {
				return err
			}
			if rootFlags.verbose {
				log.WithComponent("gallery").Info("rendering showcase")
			}
			return runGallery(cmd, opts, selected)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width (defaults to the terminal width)")

	return cmd
}

func runGallery(cmd *cobra.Command, opts *galleryOptions, selected theme.Theme) error {
	width := opts.width
	if width <= 0 {
		width = detectWidth()
	}

	ctx := components.DefaultContext().WithTheme(selected).WithWidth(width)
	out := cmd.OutOrStdout()

	header := components.NewHeader("Glint").
		WithSubtitle("A themed component kit for terminal applications").
		WithActions(components.InfoBadge(selected.Name)).
		WithWidth(width)
	fmt.Fprintln(out, header.ViewWithContext(ctx))
	fmt.Fprintln(out, components.HorizontalDivider().WithWidth(width).ViewWithContext(ctx))

	fmt.Fprintln(out, components.SubtitleText("Buttons").ViewWithContext(ctx))
	fmt.Fprintln(out, buttonRows(ctx))

	fmt.Fprintln(out, components.SubtitleText("Inputs").ViewWithContext(ctx))
	fmt.Fprintln(out, inputColumn(ctx))

	fmt.Fprintln(out, components.SubtitleText("Badges").ViewWithContext(ctx))
	fmt.Fprintln(out, badgeRow(ctx))

	return nil
}

func buttonRows(ctx components.RenderContext) string {
	roles := components.HStack(
		components.NewButton("Save"),
		components.DestructiveButton("Delete"),
		components.NewButton("Approve").WithRole(components.RoleSuccess),
		components.OutlineButton("Preview"),
		components.NewButton("Duplicate").WithRole(components.RoleSecondary),
		components.GhostButton("Dismiss"),
		components.LinkButton("Learn more"),
	).WithGap(1)

	sizes := components.HStack(
		components.NewButton("Small").WithSize(components.SizeSmall),
		components.NewButton("Default"),
		components.NewButton("Large").WithSize(components.SizeLarge),
		components.NewButton("+").WithSize(components.SizeIcon),
		components.NewButton("Disabled").WithDisabled(true),
	).WithGap(1)

	return components.VStack(roles, sizes).WithGap(1).ViewWithContext(ctx)
}

func inputColumn(ctx components.RenderContext) string {
	return components.VStack(
		components.NewInput("Email").
			WithPlaceholder("you@example.com").
			WithHint("We never share your address."),
		components.NewInput("Username").
			WithValue("Glint User").
			WithError("Usernames must be lowercase."),
		components.NewInput("Focused").
			WithValue("editing").
			WithFocus(true),
	).WithGap(1).ViewWithContext(ctx)
}

func badgeRow(ctx components.RenderContext) string {
	return components.HStack(
		components.NewBadge("draft"),
		components.NewBadge("beta").WithVariant(components.BadgePrimary),
		components.SuccessBadge("passing"),
		components.NewBadge("flaky").WithVariant(components.BadgeWarning),
		components.ErrorBadge("failing"),
		components.InfoBadge("v1.2.0"),
	).WithGap(1).ViewWithContext(ctx)
}

func detectWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
