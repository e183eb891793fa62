package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

var headerDef = styled.Styled(yStackDef, "Header", styled.Props{
	"gap":           "$xxs",
	"paddingBottom": "$xs",
})

// Header is a heading with an optional caption and rule below it.
type Header struct {
	*Stack
	title    string
	subtitle string
	level    int
	rule     bool
}

// NewHeader creates a level 1 header.
func NewHeader(title string) *Header {
	return &Header{Stack: NewStack(headerDef), title: title, level: 1}
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header against ctx.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	var heading *Text
	switch h.level {
	case 1:
		heading = Heading(h.title)
	case 2:
		heading = Title(h.title)
	default:
		heading = Subtitle(h.title)
	}

	children := []ui.Renderable{heading}
	if h.subtitle != "" {
		children = append(children, Caption(h.subtitle))
	}
	if h.rule {
		children = append(children, HorizontalDivider().With(MarginTop(tokens.XXS)))
	}

	h.SetChildren(children)
	return h.Stack.ViewWithContext(ctx)
}

// WithSubtitle adds a caption under the title.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithRule draws a divider under the header.
func (h *Header) WithRule() *Header {
	h.rule = true
	return h
}

// WithLevel sets the header level: 1 heading, 2 title, 3 and deeper subtitle.
func (h *Header) WithLevel(level int) *Header {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	h.level = level
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}

// Level returns the header level.
func (h *Header) Level() int {
	return h.level
}
