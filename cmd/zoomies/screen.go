package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/zoomies/internal/logger"
	"github.com/alexisbeaulieu97/zoomies/internal/screens"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
)

type screenFlags struct {
	print bool
	cols  int
	rows  int
}

func (f *screenFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.print, "print", false, "render the screen once to stdout instead of running interactively")
	fs.IntVar(&f.cols, "cols", 0, "terminal width in cells (defaults to the current terminal)")
	fs.IntVar(&f.rows, "rows", 0, "terminal height in cells (defaults to the current terminal)")
}

func newScreenCmd(app *AppContext, use, short, title string) *cobra.Command {
	flags := &screenFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, app, flags, title)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func runScreen(cmd *cobra.Command, app *AppContext, flags *screenFlags, title string) error {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())
	t, err := theme.Select(app.Settings.Appearance, renderer)
	if err != nil {
		return err
	}

	cols, rows := terminalSize(cmd.OutOrStdout(), flags.cols, flags.rows)

	// The alternate screen owns the terminal, so interactive runs stay quiet.
	log := logger.Nop()
	if flags.print {
		log = app.Logger
	}

	m, err := screens.New(app.Config,
		screens.WithTheme(t.Name),
		screens.WithStart(title),
		screens.WithRenderer(renderer),
		screens.WithSize(cols, rows),
		screens.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if flags.print {
		content, err := m.Content()
		if err != nil {
			return err
		}
		app.Logger.WithFields(map[string]any{"screen": title, "theme": t.Name}).Debug("screen rendered")
		_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s screen: %w", title, err)
	}
	return nil
}
