package server

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	bm "github.com/charmbracelet/wish/bubbletea"

	"github.com/alexisbeaulieu97/zoomies/internal/screens"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
)

// teaHandler builds the screens model for a session, rendering through a
// renderer bound to the client's terminal.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	renderer := bm.MakeRenderer(sess)

	model, err := s.sessionModel(renderer, pty.Window.Width, pty.Window.Height)
	if err != nil {
		s.log.Error(err, "build session model")
		_ = sess.Exit(1)
		return nil, nil
	}
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *Server) sessionModel(renderer *lipgloss.Renderer, width, height int) (screens.Model, error) {
	var detector theme.DarkBackgroundDetector
	if renderer != nil {
		detector = renderer
	}
	t, err := theme.Select(s.opts.Appearance, detector)
	if err != nil {
		return screens.Model{}, err
	}

	return screens.New(s.opts.Config,
		screens.WithTheme(t.Name),
		screens.WithRenderer(renderer),
		screens.WithSize(width, height),
		screens.WithLogger(s.log),
	)
}
