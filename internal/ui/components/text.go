package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component using the base text definition.
func NewText(content string) *Text {
	return newText(textDef, content)
}

func newText(def *styled.Definition, content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(def),
		content:       content,
	}
}

// View renders the text with the default context.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text, wrapping it to the parent width.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	props := t.ResolveProps(ctx)
	style := t.ComputeStyle(ctx, props)

	if style.GetWidth() == 0 && ctx.ParentWidth > 0 {
		frame := style.GetHorizontalFrameSize()
		if lipgloss.Width(t.content)+frame > ctx.ParentWidth {
			style = style.Width(ctx.ParentWidth - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
		}
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithProps layers inline props.
func (t *Text) WithProps(props styled.Props) *Text {
	t.SetProps(props)
	return t
}

// With applies token modifiers.
func (t *Text) With(mods ...Modifier) *Text {
	t.ApplyModifiers(mods...)
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies lipgloss adjustments after the props.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithStrategy sets a custom styling strategy.
func (t *Text) WithStrategy(strategy StyleStrategy) *Text {
	t.SetStrategy(strategy)
	return t
}

// Typography wrappers

// Heading renders large heading text.
func Heading(content string) *Text {
	return newText(headingDef, content)
}

// Title renders medium title text.
func Title(content string) *Text {
	return newText(titleDef, content)
}

// Subtitle renders smaller subtitle text.
func Subtitle(content string) *Text {
	return newText(subtitleDef, content)
}

// Body renders regular body text.
func Body(content string) *Text {
	return newText(bodyDef, content)
}

// Caption renders small, de-emphasised text.
func Caption(content string) *Text {
	return newText(captionDef, content)
}
