package screens

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/logger"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/components"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
)

// pulseTiming names the animation that drives the pulse tick.
const pulseTiming = "quick"

// pulseMsg flips Frame.Pulse.
type pulseMsg struct{}

// Model scrolls a stack of screens in a viewport and owns the active theme.
type Model struct {
	cfg       *config.Config
	themeName string
	screens   []Screen
	current   int

	viewport viewport.Model
	help     help.Model
	keys     KeyMap

	width  int
	height int

	renderer *lipgloss.Renderer
	log      *logger.Logger

	pulse    bool
	ticking  bool
	interval time.Duration
	err      error
}

// Option customizes a Model.
type Option func(*Model)

// WithTheme selects the initial theme by name.
func WithTheme(name string) Option {
	return func(m *Model) { m.themeName = name }
}

// WithScreens replaces the default home/gallery screens.
func WithScreens(screens ...Screen) Option {
	return func(m *Model) {
		if len(screens) > 0 {
			m.screens = screens
		}
	}
}

// WithRenderer renders through r, e.g. a renderer bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(m *Model) { m.renderer = r }
}

// WithLogger logs theme and screen changes to log.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		if log != nil {
			m.log = log
		}
	}
}

// WithSize sets the initial window size in cells.
func WithSize(width, height int) Option {
	return func(m *Model) {
		if width > 0 && height > 0 {
			m.width, m.height = width, height
		}
	}
}

// WithStart opens the screen with the given title first.
func WithStart(title string) Option {
	return func(m *Model) {
		for i, s := range m.screens {
			if s.Title() == title {
				m.current = i
				return
			}
		}
	}
}

// New creates a model over cfg. The theme must be registered with cfg.
func New(cfg *config.Config, opts ...Option) (Model, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		cfg:       cfg,
		themeName: theme.NameLight,
		screens:   []Screen{Home{}, Gallery{}},
		help:      help.New(),
		keys:      DefaultKeyMap(),
		width:     components.DefaultColumns,
		height:    components.DefaultRows,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if _, err := cfg.Theme(m.themeName); err != nil {
		return Model{}, err
	}
	if d, ok := cfg.Timing().Lookup(pulseTiming); ok {
		m.interval = d
	}
	// Init schedules the first tick for an animated start screen.
	m.ticking = animates(m.Screen()) && m.interval > 0

	m.viewport = viewport.New(m.width, m.bodyHeight())
	m.refresh()
	return m, nil
}

// Init starts the pulse tick when the first screen animates.
func (m Model) Init() tea.Cmd {
	if !animates(m.Screen()) {
		return nil
	}
	return m.tick()
}

// Update handles window, key and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = m.bodyHeight()
		m.help.Width = m.width
		m.refresh()
		return m, nil

	case pulseMsg:
		m.ticking = false
		if !animates(m.Screen()) {
			return m, nil
		}
		m.pulse = !m.pulse
		m.refresh()
		return m, m.startTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.toggleTheme()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.current = (m.current + 1) % len(m.screens)
			m.log.WithField("screen", m.Screen().Title()).Debug("screen changed")
			m.refresh()
			m.viewport.GotoTop()
			if animates(m.Screen()) && !m.ticking {
				return m, m.startTick()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the active screen above the help line.
func (m Model) View() string {
	if m.err != nil {
		return m.err.Error() + "\n"
	}
	return m.viewport.View() + "\n" + m.help.View(m.keys)
}

// ThemeName returns the active theme.
func (m Model) ThemeName() string { return m.themeName }

// Screen returns the active screen.
func (m Model) Screen() Screen { return m.screens[m.current] }

// Context returns the render context for the current theme and window size.
func (m Model) Context() (components.RenderContext, error) {
	ctx, err := components.NewContext(m.cfg, m.themeName, media.FromTerminal(m.width, m.height))
	if err != nil {
		return components.RenderContext{}, err
	}
	return ctx.WithParentWidth(m.width).WithRenderer(m.renderer), nil
}

// Content renders the whole active screen, ignoring the scroll position.
func (m Model) Content() (string, error) {
	ctx, err := m.Context()
	if err != nil {
		return "", err
	}
	return Render(m.Screen(), ctx, Frame{Pulse: m.pulse}), nil
}

func (m *Model) refresh() {
	content, err := m.Content()
	if err != nil {
		m.err = err
		m.log.Error(err, "build render context")
		return
	}
	m.err = nil
	m.viewport.SetContent(content)
}

func (m *Model) toggleTheme() {
	if m.themeName == theme.NameDark {
		m.themeName = theme.NameLight
	} else {
		m.themeName = theme.NameDark
	}
	m.log.WithField("theme", m.themeName).Debug("theme toggled")
	m.refresh()
}

func (m Model) bodyHeight() int {
	// one row for the help line
	if m.height <= 1 {
		return 1
	}
	return m.height - 1
}

// startTick schedules the next pulse and records that one is in flight.
func (m *Model) startTick() tea.Cmd {
	cmd := m.tick()
	m.ticking = cmd != nil
	return cmd
}

func (m Model) tick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return pulseMsg{} })
}
