package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
)

// Panel groups related content on the plain background with a thin border.
// Unlike Card it has no shadow and is meant for layout organization.
type Panel struct {
	*Stack
	header ui.Renderable
	footer ui.Renderable
}

// NewPanel creates a new panel around children.
func NewPanel(children ...ui.Renderable) *Panel {
	return &Panel{Stack: NewStack(panelDef, children...)}
}

// WithHeader sets the panel header, replacing a previous one.
func (p *Panel) WithHeader(header ui.Renderable) *Panel {
	children := p.Children()
	if p.header != nil && len(children) > 0 && children[0] == p.header {
		children = children[1:]
	}
	p.header = header

	all := make([]ui.Renderable, 0, len(children)+1)
	all = append(all, header)
	all = append(all, children...)
	p.SetChildren(all)
	return p
}

// WithFooter sets the panel footer, replacing a previous one.
func (p *Panel) WithFooter(footer ui.Renderable) *Panel {
	children := p.Children()
	if p.footer != nil && len(children) > 0 && children[len(children)-1] == p.footer {
		children = children[:len(children)-1]
	}
	p.footer = footer

	all := append([]ui.Renderable{}, children...)
	p.SetChildren(append(all, footer))
	return p
}

// WithTitle is a convenience method to add a subtitle header.
func (p *Panel) WithTitle(title string) *Panel {
	return p.WithHeader(Subtitle(title))
}

// AsStack returns the underlying stack for advanced customization.
func (p *Panel) AsStack() *Stack {
	return p.Stack
}
