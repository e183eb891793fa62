package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/zoomies/internal/logger"
	"github.com/alexisbeaulieu97/zoomies/internal/settings"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
)

// AppContext bundles the services resolved once per invocation.
type AppContext struct {
	Settings settings.Settings
	Logger   *logger.Logger
	Config   *config.Config
}

// load resolves settings, the logger and the styling config for cmd.
func (a *AppContext) load(cmd *cobra.Command) error {
	s, err := settings.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.Settings = s

	log, err := logger.New(logger.Options{
		Level:         s.LogLevel,
		HumanReadable: s.HumanLogs,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.Logger = log.WithField("command", cmd.Name())

	cfg := config.Default()
	if s.Overrides != "" {
		o, err := config.LoadOverrides(s.Overrides)
		if err != nil {
			return err
		}
		cfg = cfg.WithOverrides(o)
		a.Logger.WithField("path", s.Overrides).Debug("token overrides applied")
	}
	a.Config = cfg
	return nil
}
