package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/server"
	"github.com/alexisbeaulieu97/zoomies/internal/settings"
)

func newServeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the screens over SSH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv, err := server.New(server.Options{
				Address:     app.Settings.Serve.Address,
				HostKeyPath: app.Settings.Serve.HostKey,
				IdleTimeout: app.Settings.Serve.IdleTimeout,
				Appearance:  app.Settings.Appearance,
				Config:      app.Config,
				Logger:      app.Logger,
			})
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx)
		},
	}

	settings.RegisterServeFlags(cmd.Flags())
	return cmd
}
