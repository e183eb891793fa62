package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
)

func newMediaCmd(app *AppContext) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "media",
		Short: "Show which media conditions hold for a viewport",
		Long: `Show which media conditions hold for a viewport given in pixels.
Without --width/--height the current terminal size is converted at 8x16 pixels per cell.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, rows := terminalSize(cmd.OutOrStdout(), 0, 0)
			vp := media.FromTerminal(cols, rows)
			if width > 0 {
				vp.Width = width
			}
			if height > 0 {
				vp.Height = height
			}
			return printMedia(cmd, app.Config.Media(), vp)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "viewport width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "viewport height in pixels")
	return cmd
}

func printMedia(cmd *cobra.Command, set media.Set, vp media.Viewport) error {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	on := r.NewStyle().Bold(true)

	rows := make([][]string, 0, len(set.Conditions()))
	for _, c := range set.Conditions() {
		mark := " "
		if c.Query.Matches(vp) {
			mark = on.Render("✓")
		}
		rows = append(rows, []string{mark, c.Name, describeQuery(c.Query)})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "CONDITION", "QUERY").
		Rows(rows...)

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "viewport %dx%d px\n%s\n", vp.Width, vp.Height, t.Render())
	return err
}

func describeQuery(q media.Query) string {
	switch {
	case q.MaxWidth > 0:
		return fmt.Sprintf("maxWidth %d", q.MaxWidth)
	case q.MinWidth > 0:
		return fmt.Sprintf("minWidth %d", q.MinWidth)
	case q.MaxHeight > 0:
		return fmt.Sprintf("maxHeight %d", q.MaxHeight)
	case q.MinHeight > 0:
		return fmt.Sprintf("minHeight %d", q.MinHeight)
	case q.Hover != "":
		return "hover " + q.Hover
	case q.Pointer != "":
		return "pointer " + q.Pointer
	default:
		return "always"
	}
}
