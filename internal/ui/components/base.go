package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/config"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
)

// BaseComponent carries the styled definition, the variant selection, the
// interaction state and inline props of a component.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	def      *styled.Definition
	variants map[string]string
	state    styled.State
	props    styled.Props
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy adjusts a rendered style after token resolution.
type StyleStrategy interface {
	Apply(base lipgloss.Style, scope *config.Scope) lipgloss.Style
}

// StyleFunc is a lipgloss escape hatch applied after the styled props.
type StyleFunc func(lipgloss.Style, *config.Scope) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, scope *config.Scope) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, scope)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component rendering def. def may be nil for
// unstyled primitives.
func NewBaseComponent(def *styled.Definition) BaseComponent {
	return BaseComponent{
		def:      def,
		variants: map[string]string{},
		props:    styled.Props{},
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// Definition returns the styled definition behind the component.
func (b *BaseComponent) Definition() *styled.Definition {
	return b.def
}

// SetVariant selects a value for a variant group.
func (b *BaseComponent) SetVariant(group, value string) {
	b.variants[group] = value
}

// Variant returns the effective value of a variant group, falling back to the
// declared default.
func (b *BaseComponent) Variant(group string) (string, bool) {
	if b.def == nil {
		v, ok := b.variants[group]
		return v, ok
	}
	return b.def.SelectedVariant(group, styled.Selection{Variants: b.variants})
}

// SetState replaces the interaction state.
func (b *BaseComponent) SetState(state styled.State) {
	b.state = state
}

// State returns the interaction state.
func (b *BaseComponent) State() styled.State {
	return b.state
}

// SetProps layers inline props over the definition. Shorthands are accepted.
func (b *BaseComponent) SetProps(props styled.Props) {
	for k, v := range props {
		if nested, ok := v.(styled.Props); ok {
			if existing, ok := b.props[k].(styled.Props); ok {
				v = styled.Merge(existing, nested)
			}
		}
		b.props[k] = v
	}
}

// Props returns a copy of the inline props.
func (b *BaseComponent) Props() styled.Props {
	return b.props.Clone()
}

// ApplyModifiers runs token modifiers against the inline props.
func (b *BaseComponent) ApplyModifiers(mods ...Modifier) {
	for _, mod := range mods {
		if mod != nil {
			mod(b.props)
		}
	}
}

// ResolveProps layers the definition for ctx, then the inline props, then any
// inline state styles the current state enables.
func (b *BaseComponent) ResolveProps(ctx RenderContext) styled.Props {
	ctx = ctx.orDefault()
	sel := styled.Selection{Variants: b.variants, State: b.state, Media: ctx.Active}

	props := styled.Props{}
	if b.def != nil {
		props = b.def.Resolve(sel)
	}

	inline := ctx.Scope.Config().Expand(b.props)
	for k, v := range inline {
		if _, nested := v.(styled.Props); nested {
			continue
		}
		props[k] = v
	}

	states := []struct {
		on  bool
		key string
	}{
		{b.state.Hover, styled.HoverStyle},
		{b.state.Focus, styled.FocusStyle},
		{b.state.Press, styled.PressStyle},
	}
	for _, st := range states {
		if nested, ok := inline[st.key].(styled.Props); ok && st.on {
			for k, v := range nested {
				props[k] = v
			}
		}
	}
	return props
}

// ComputeStyle renders resolved props to a lipgloss style for ctx.
func (b *BaseComponent) ComputeStyle(ctx RenderContext, props styled.Props) lipgloss.Style {
	ctx = ctx.orDefault()
	style := styled.Render(props, ctx.Scope, ctx.Style(b.style))
	if b.strategy != nil {
		style = b.strategy.Apply(style, ctx.Scope)
	}
	return style
}

// SetStyle replaces the raw lipgloss style props are rendered onto.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A non-composite strategy is wrapped so it still runs first.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, scope *config.Scope) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, scope)
		}
		for _, applier := range appliers {
			base = applier(base, scope)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Constraints defines sizing constraints in cells for layout calculations.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{
		MaxWidth:  -1, // -1 means unlimited
		MaxHeight: -1,
	}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain applies the constraints to a given size.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth != -1 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight != -1 && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return w, h
}

// HasWidth returns true if there's a width limit.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth > 0
}

// RenderContext carries the theme scope, viewport and layout limits a
// component renders against. Nothing is global: two contexts with different
// themes can render the same component side by side.
type RenderContext struct {
	Scope       *config.Scope
	Viewport    media.Viewport
	Active      []string
	Constraints Constraints
	ParentWidth int
	Renderer    *lipgloss.Renderer
}

// Default terminal size assumed when no window size is known.
const (
	DefaultColumns = 80
	DefaultRows    = 24
)

// DefaultContext renders with the default config, light theme and an 80x24 viewport.
func DefaultContext() RenderContext {
	ctx, _ := NewContext(config.Default(), theme.NameLight, media.FromTerminal(DefaultColumns, DefaultRows))
	return ctx
}

// NewContext builds a context for a theme and viewport; the active media
// conditions are evaluated once here.
func NewContext(cfg *config.Config, themeName string, vp media.Viewport) (RenderContext, error) {
	scope, err := cfg.Scope(themeName)
	if err != nil {
		return RenderContext{}, err
	}
	ctx := RenderContext{Scope: scope, Constraints: Unconstrained()}
	return ctx.WithViewport(vp), nil
}

// WithScope returns a new context resolving tokens through scope.
func (r RenderContext) WithScope(scope *config.Scope) RenderContext {
	r.Scope = scope
	return r.WithViewport(r.Viewport)
}

// WithViewport returns a new context for vp with the active conditions recomputed.
func (r RenderContext) WithViewport(vp media.Viewport) RenderContext {
	r.Viewport = vp
	cfg := config.Default()
	if r.Scope != nil {
		cfg = r.Scope.Config()
	}
	r.Active = cfg.Media().Active(vp)
	return r
}

// orDefault fills the unset parts of a zero context from DefaultContext.
func (r RenderContext) orDefault() RenderContext {
	if r.Scope != nil {
		return r
	}
	def := DefaultContext()
	r.Scope = def.Scope
	if r.Constraints == (Constraints{}) {
		r.Constraints = def.Constraints
	}
	if r.Viewport == (media.Viewport{}) {
		r.Viewport = def.Viewport
	}
	return r.WithViewport(r.Viewport)
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the available width in cells.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// WithRenderer returns a new context rendering through renderer, e.g. one bound
// to an SSH session.
func (r RenderContext) WithRenderer(renderer *lipgloss.Renderer) RenderContext {
	r.Renderer = renderer
	return r
}

// IsActive reports whether a media condition holds for the context's viewport.
func (r RenderContext) IsActive(name string) bool {
	for _, a := range r.Active {
		if a == name {
			return true
		}
	}
	return false
}

// Style binds base to the context renderer.
func (r RenderContext) Style(base lipgloss.Style) lipgloss.Style {
	if r.Renderer == nil {
		return base
	}
	return base.Renderer(r.Renderer)
}

// NewStyle returns an empty style bound to the context renderer.
func (r RenderContext) NewStyle() lipgloss.Style {
	if r.Renderer == nil {
		return lipgloss.NewStyle()
	}
	return r.Renderer.NewStyle()
}

// available returns the width in cells a component may fill, or 0 if unknown.
func (r RenderContext) available() int {
	width := r.ParentWidth
	if r.Constraints.MaxWidth > 0 && (width == 0 || r.Constraints.MaxWidth < width) {
		width = r.Constraints.MaxWidth
	}
	return width
}

// ContextualRenderable is a component that can receive render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func render(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
