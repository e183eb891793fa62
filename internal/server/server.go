// Package server serves the screens over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"

	"github.com/alexisbeaulieu97/zoomies/internal/logger"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// shutdownTimeout bounds how long open sessions get to finish.
const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	Address     string
	HostKeyPath string
	IdleTimeout time.Duration
	// Appearance is the theme sessions start with: light, dark or auto.
	Appearance string
	Config     *config.Config
	Logger     *logger.Logger
}

// Server wires the SSH server and its middleware chain.
type Server struct {
	opts Options
	srv  *ssh.Server
	log  *logger.Logger
}

// New builds a server. Middleware runs bottom-up: the access log sees every
// session, activeterm rejects sessions without a pty, and the bubbletea
// middleware runs the screens.
func New(opts Options) (*Server, error) {
	if opts.Address == "" {
		return nil, zerrors.NewValidationError("serve.address", "address is required", nil)
	}
	if opts.HostKeyPath == "" {
		return nil, zerrors.NewValidationError("serve.host-key", "host key path is required", nil)
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	s := &Server{opts: opts, log: opts.Logger.WithField("component", "server")}

	srvOpts := []ssh.Option{
		wish.WithAddress(opts.Address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithMiddleware(
			bm.Middleware(s.teaHandler),
			activeterm.Middleware(),
			AccessLog(s.log),
		),
	}
	if opts.IdleTimeout > 0 {
		srvOpts = append(srvOpts, wish.WithIdleTimeout(opts.IdleTimeout))
	}

	srv, err := wish.NewServer(srvOpts...)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}
	s.srv = srv
	return s, nil
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.srv.Addr
}

// ListenAndServe listens on the configured address until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts sessions on l until ctx is cancelled, then shuts down
// gracefully. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error(err, "shutdown ssh server")
		}
	}()

	s.log.WithFields(map[string]any{
		"address":    l.Addr().String(),
		"appearance": s.opts.Appearance,
	}).Info("ssh server listening")

	err := s.srv.Serve(l)
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		s.log.Info("ssh server stopped")
		return nil
	}
	return err
}
