package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/screens"
	"github.com/alexisbeaulieu97/zoomies/internal/settings"
)

func newRootCmd() *cobra.Command {
	app := &AppContext{}
	rootScreen := &screenFlags{}

	cmd := &cobra.Command{
		Use:           "zoomies",
		Short:         "Zoomies renders design-token driven terminal screens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScreen(cmd, app, rootScreen, screens.Home{}.Title())
		},
	}

	settings.RegisterFlags(cmd.PersistentFlags())
	rootScreen.register(cmd.Flags())

	cmd.AddCommand(newScreenCmd(app, "home", "Show the welcome screen", screens.Home{}.Title()))
	cmd.AddCommand(newScreenCmd(app, "gallery", "Show every example component variant", screens.Gallery{}.Title()))
	cmd.AddCommand(newTokensCmd(app))
	cmd.AddCommand(newThemesCmd(app))
	cmd.AddCommand(newMediaCmd(app))
	cmd.AddCommand(newSnapshotCmd(app))
	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
