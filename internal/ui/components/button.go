package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Button is a labelled, pressable control (visual only; the host wires input).
type Button struct {
	BaseComponent
	label string
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(buttonDef),
		label:         label,
	}
}

// View renders the button with the default context.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	props := b.ResolveProps(ctx)
	out := b.ComputeStyle(ctx, props).Render(b.label)
	if spec, ok := styled.ShadowOf(props, ctx.Scope); ok {
		out = styled.DropShadow(out, spec, ctx.NewStyle())
	}
	return out
}

// WithProps layers inline props.
func (b *Button) WithProps(props styled.Props) *Button {
	b.SetProps(props)
	return b
}

// With applies token modifiers.
func (b *Button) With(mods ...Modifier) *Button {
	b.ApplyModifiers(mods...)
	return b
}

// WithState sets the interaction state.
func (b *Button) WithState(state styled.State) *Button {
	b.SetState(state)
	return b
}

// WithPressed toggles the press state.
func (b *Button) WithPressed(pressed bool) *Button {
	s := b.State()
	s.Press = pressed
	b.SetState(s)
	return b
}

// WithFocused toggles the focus state.
func (b *Button) WithFocused(focused bool) *Button {
	s := b.State()
	s.Focus = focused
	b.SetState(s)
	return b
}

// WithStyle sets the button style.
func (b *Button) WithStyle(style lipgloss.Style) *Button {
	b.SetStyle(style)
	return b
}

// WithAppliers applies lipgloss adjustments after the props.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetLabel updates the button label.
func (b *Button) SetLabel(label string) *Button {
	b.label = label
	return b
}

// pressFeedback dims a button while pressed.
var pressFeedback = styled.Props{"opacity": 0.8, "scale": 0.98}

// filledButton is a solid button on a theme color with light text.
func filledButton(label, background string) *Button {
	return NewButton(label).
		With(
			Background(background),
			Foreground("$backgroundStrong"),
			PaddingX(tokens.LG),
			PaddingY(tokens.MD),
			BorderRadius(tokens.MD),
			PressStyle(pressFeedback),
		)
}

// PrimaryButton creates a button on the primary color.
func PrimaryButton(label string) *Button {
	return filledButton(label, "$primary")
}

// SecondaryButton creates a button on the secondary color.
func SecondaryButton(label string) *Button {
	return filledButton(label, "$secondary")
}
