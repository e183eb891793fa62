package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/screens"
	"github.com/alexisbeaulieu97/zoomies/pkg/diff"
)

// errSnapshotMismatch is returned when a rendering drifts from its golden file.
var errSnapshotMismatch = errors.New("snapshot differs from golden file")

type snapshotFlags struct {
	golden string
	update bool
	theme  string
	cols   int
	rows   int
}

func newSnapshotCmd(app *AppContext) *cobra.Command {
	flags := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:   "snapshot <home|gallery>",
		Short: "Compare a plain-text rendering of a screen against a golden file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.golden, "golden", "", "golden file path (defaults to testdata/<screen>.<theme>.golden)")
	cmd.Flags().BoolVar(&flags.update, "update", false, "rewrite the golden file instead of comparing")
	cmd.Flags().StringVar(&flags.theme, "theme", "light", "theme to render")
	cmd.Flags().IntVar(&flags.cols, "cols", 100, "terminal width in cells")
	cmd.Flags().IntVar(&flags.rows, "rows", 40, "terminal height in cells")
	return cmd
}

func runSnapshot(cmd *cobra.Command, app *AppContext, flags *snapshotFlags, name string) error {
	var screen screens.Screen
	switch name {
	case "home":
		screen = screens.Home{}
	case "gallery":
		screen = screens.Gallery{}
	default:
		return fmt.Errorf("unknown screen %q (want home or gallery)", name)
	}

	// Golden files hold plain text so they stay stable across terminals.
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout(), termenv.WithProfile(termenv.Ascii))
	m, err := screens.New(app.Config,
		screens.WithScreens(screen),
		screens.WithTheme(flags.theme),
		screens.WithRenderer(renderer),
		screens.WithSize(flags.cols, flags.rows),
	)
	if err != nil {
		return err
	}
	rendered, err := m.Content()
	if err != nil {
		return err
	}
	rendered += "\n"

	path := flags.golden
	if path == "" {
		path = filepath.Join("testdata", fmt.Sprintf("%s.%s.golden", name, flags.theme))
	}
	log := app.Logger.WithFields(map[string]any{"screen": name, "golden": path})

	if flags.update {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create golden directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write golden file: %w", err)
		}
		log.Info("golden file updated")
		return nil
	}

	golden, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read golden file: %w", err)
	}

	out := diff.Unified(string(golden), rendered, path, name)
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s matches %s\n", name, path)
		return nil
	}

	inserted, deleted := diff.Changed(string(golden), rendered)
	log.WithFields(map[string]any{"inserted": inserted, "deleted": deleted}).Warn("snapshot drifted")
	fmt.Fprint(cmd.OutOrStdout(), out)
	return errSnapshotMismatch
}
