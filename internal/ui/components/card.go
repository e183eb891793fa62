package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
)

// Card is a raised content block with a border and drop shadow.
type Card struct {
	*Stack
}

// NewCard creates a new card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{Stack: NewStack(cardDef, children...)}
}

// WithTitle prepends a title.
func (c *Card) WithTitle(title string) *Card {
	children := make([]ui.Renderable, 0, len(c.Children())+1)
	children = append(children, Title(title))
	children = append(children, c.Children()...)
	c.SetChildren(children)
	return c
}

// WithFooter appends a divider and a footer.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.Add(HorizontalDivider(), footer)
	return c
}

// AsStack returns the underlying stack for advanced customization.
func (c *Card) AsStack() *Stack {
	return c.Stack
}
