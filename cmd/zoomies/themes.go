package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
)

func newThemesCmd(app *AppContext) *cobra.Command {
	var names []string

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Print the color values of each theme with swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(names) == 0 {
				names = app.Config.ThemeNames()
			}
			r := lipgloss.NewRenderer(cmd.OutOrStdout())
			for _, name := range names {
				values, err := app.Config.Theme(name)
				if err != nil {
					return err
				}
				if err := printTheme(cmd, r, values); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&names, "name", nil, "themes to print (defaults to every registered theme)")
	return cmd
}

func printTheme(cmd *cobra.Command, r *lipgloss.Renderer, values theme.Values) error {
	rows := make([][]string, 0, len(values.Names()))
	for _, name := range values.Names() {
		raw, _ := values.Get(name)
		swatch := "  "
		if c, ok := values.Terminal(name); ok {
			swatch = r.NewStyle().Background(c).Render("  ")
		}
		rows = append(rows, []string{swatch, "$" + name, raw})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "VALUE", "COLOR").
		Rows(rows...)

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", r.NewStyle().Bold(true).Render(values.Name()), t.Render())
	return err
}
