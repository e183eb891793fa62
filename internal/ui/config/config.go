// Package config is the styling engine configuration: the token tables, themes,
// fonts, media conditions, shorthands and settings registered at startup.
package config

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/fonts"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/palette"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// Settings are the engine flags carried by the configuration.
type Settings struct {
	ShouldAddPrefersColorThemes bool
	ThemeClassNameOnRoot        bool
}

// Font names registered with the engine.
const (
	FontHeading = "heading"
	FontBody    = "body"
	FontMono    = "mono"
)

// Config is an immutable engine configuration. Builders return copies.
type Config struct {
	space      tokens.Table
	size       tokens.SizeTable
	radius     tokens.Table
	zIndex     tokens.Table
	colors     map[string]string
	themes     map[string]theme.Values
	fonts      map[string]fonts.Font
	media      media.Set
	shorthands map[string]string
	timing     palette.Timing
	settings   Settings
}

// Option customises a Config built by New.
type Option func(*Config)

// WithMedia replaces the media conditions.
func WithMedia(set media.Set) Option {
	return func(c *Config) {
		c.media = set
	}
}

// WithTheme registers or replaces the values for a theme name.
func WithTheme(values theme.Values) Option {
	return func(c *Config) {
		c.themes[values.Name()] = values
	}
}

// WithSpace replaces the space table; the size table follows it.
func WithSpace(space tokens.Table) Option {
	return func(c *Config) {
		c.space = space
		c.size = c.size.WithLengths(space)
	}
}

// WithSettings replaces the engine settings.
func WithSettings(s Settings) Option {
	return func(c *Config) {
		c.settings = s
	}
}

// WithShorthand registers an extra shorthand.
func WithShorthand(short, property string) Option {
	return func(c *Config) {
		c.shorthands[short] = property
	}
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Default returns the app configuration. It is built once and shared.
func Default() *Config {
	defaultOnce.Do(func() {
		defaultCfg = New()
	})
	return defaultCfg
}

// New builds a configuration from the app tables and applies opts.
func New(opts ...Option) *Config {
	font := fonts.SpaceGrotesk()
	c := &Config{
		space:  tokens.Space(),
		size:   tokens.Size(),
		radius: tokens.Radius(),
		zIndex: tokens.ZIndex(),
		colors: colorTokens(palette.Light()),
		themes: map[string]theme.Values{
			theme.NameLight: theme.LightValues(),
			theme.NameDark:  theme.DarkValues(),
		},
		fonts: map[string]fonts.Font{
			FontHeading: font,
			FontBody:    font,
			FontMono:    font,
		},
		media:      media.Default(),
		shorthands: make(map[string]string, len(defaultShorthands)),
		timing:     palette.DefaultTiming(),
		settings: Settings{
			ShouldAddPrefersColorThemes: true,
			ThemeClassNameOnRoot:        true,
		},
	}
	for k, v := range defaultShorthands {
		c.shorthands[k] = v
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func colorTokens(colors palette.Colors) map[string]string {
	out := make(map[string]string)
	for _, k := range colors.Keys() {
		if v, ok := colors.Get(k); ok {
			out[k] = v
		}
	}
	return out
}

func (c *Config) clone() *Config {
	out := *c
	out.colors = make(map[string]string, len(c.colors))
	for k, v := range c.colors {
		out.colors[k] = v
	}
	out.themes = make(map[string]theme.Values, len(c.themes))
	for k, v := range c.themes {
		out.themes[k] = v
	}
	out.fonts = make(map[string]fonts.Font, len(c.fonts))
	for k, v := range c.fonts {
		out.fonts[k] = v
	}
	out.shorthands = make(map[string]string, len(c.shorthands))
	for k, v := range c.shorthands {
		out.shorthands[k] = v
	}
	return &out
}

// Space returns the space table, including the default key.
func (c *Config) Space() tokens.Table { return c.space }

// Size returns the size table.
func (c *Config) Size() tokens.SizeTable { return c.size }

// Radius returns the radius table.
func (c *Config) Radius() tokens.Table { return c.radius }

// ZIndex returns the z-index table.
func (c *Config) ZIndex() tokens.Table { return c.zIndex }

// Color returns the authored value of a color token.
func (c *Config) Color(key string) (string, bool) {
	v, ok := c.colors[key]
	return v, ok
}

// ColorNames returns the color token names, sorted.
func (c *Config) ColorNames() []string {
	return sortedKeys(c.colors)
}

// Media returns the media conditions.
func (c *Config) Media() media.Set { return c.media }

// Timing returns the named animation durations.
func (c *Config) Timing() palette.Timing { return c.timing }

// Settings returns the engine settings.
func (c *Config) Settings() Settings { return c.settings }

// Font returns a registered font by name.
func (c *Config) Font(name string) (fonts.Font, bool) {
	f, ok := c.fonts[name]
	return f, ok
}

// FontNames returns the registered font names, sorted.
func (c *Config) FontNames() []string {
	names := make([]string, 0, len(c.fonts))
	for k := range c.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ThemeNames returns the registered theme names, sorted.
func (c *Config) ThemeNames() []string {
	names := make([]string, 0, len(c.themes))
	for k := range c.themes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Theme returns the values registered for a theme name.
func (c *Config) Theme(name string) (theme.Values, error) {
	v, ok := c.themes[name]
	if !ok {
		return theme.Values{}, zerrors.NewThemeError(name, nil)
	}
	return v, nil
}

// Shorthand returns the full property name for a shorthand.
func (c *Config) Shorthand(short string) (string, bool) {
	p, ok := c.shorthands[short]
	return p, ok
}

// Expand rewrites shorthand keys to their full property names. A full name
// already present in props wins over its shorthand. Nested state props are
// expanded too.
func (c *Config) Expand(props styled.Props) styled.Props {
	out := make(styled.Props, len(props))
	for k, v := range props {
		if nested, ok := v.(styled.Props); ok {
			v = c.Expand(nested)
		}
		full, isShort := c.shorthands[k]
		if !isShort {
			out[k] = v
			continue
		}
		if _, explicit := props[full]; explicit {
			continue
		}
		out[full] = v
	}
	return out
}

// Scope binds the configuration to one theme for token resolution.
func (c *Config) Scope(themeName string) (*Scope, error) {
	values, err := c.Theme(themeName)
	if err != nil {
		return nil, err
	}
	return &Scope{cfg: c, values: values}, nil
}

// MustScope is Scope for theme names known to be registered.
func (c *Config) MustScope(themeName string) *Scope {
	s, err := c.Scope(themeName)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks every definition against every registered theme.
func (c *Config) Validate(defs ...*styled.Definition) error {
	var errs []error
	for _, name := range c.ThemeNames() {
		scope := c.MustScope(name)
		for _, def := range defs {
			if err := styled.Validate(def, scope); err != nil {
				errs = append(errs, fmt.Errorf("theme %s: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Scope resolves token references for one theme. It implements styled.Resolver.
type Scope struct {
	cfg    *Config
	values theme.Values
}

var _ styled.Resolver = (*Scope)(nil)

// ThemeName returns the theme the scope resolves colors against.
func (s *Scope) ThemeName() string { return s.values.Name() }

// Values returns the theme values behind the scope.
func (s *Scope) Values() theme.Values { return s.values }

// Config returns the configuration the scope belongs to.
func (s *Scope) Config() *Config { return s.cfg }

// Space implements styled.Resolver.
func (s *Scope) Space(key string) (int, bool) {
	return s.cfg.space.Get(tokens.Key(key))
}

// Size implements styled.Resolver.
func (s *Scope) Size(key string) (tokens.SizeValue, bool) {
	return s.cfg.size.Get(tokens.Key(key))
}

// Radius implements styled.Resolver.
func (s *Scope) Radius(key string) (int, bool) {
	return s.cfg.radius.Get(tokens.Key(key))
}

// ZIndex implements styled.Resolver.
func (s *Scope) ZIndex(key string) (int, bool) {
	return s.cfg.zIndex.Get(tokens.Key(key))
}

// Color implements styled.Resolver. Theme values win over the color tokens.
func (s *Scope) Color(ref string) (lipgloss.TerminalColor, bool) {
	if c, ok := s.values.Terminal(ref); ok {
		return c, true
	}
	key, ok := tokens.ParseRef(ref)
	if !ok {
		return nil, false
	}
	raw, ok := s.cfg.colors[key]
	if !ok {
		return nil, false
	}
	return s.values.Flatten(raw)
}

// Font implements styled.Resolver.
func (s *Scope) Font(name string) (fonts.Font, bool) {
	return s.cfg.Font(name)
}

// Animation implements styled.Resolver.
func (s *Scope) Animation(name string) bool {
	_, ok := s.cfg.timing.Lookup(name)
	return ok
}

// HasMedia implements styled.Resolver.
func (s *Scope) HasMedia(name string) bool {
	return s.cfg.media.Has(name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
