package components

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
)

// Container is a page-level box: full width up to 1200px, centered, with
// horizontal padding. Card and Panel are built the same way.
type Container struct {
	*Stack
}

// NewContainer creates a container around children.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{Stack: NewStack(containerDef, children...)}
}

// AsStack returns the underlying stack for advanced customization.
func (c *Container) AsStack() *Stack {
	return c.Stack
}

// Section is a vertical block separated from its siblings by vertical padding.
func Section(children ...ui.Renderable) *Stack {
	return NewStack(sectionDef, children...)
}

// Row lays children out horizontally with a gap, centered on the cross axis.
func Row(children ...ui.Renderable) *Stack {
	return NewStack(rowDef, children...)
}

// Column lays children out vertically with a gap.
func Column(children ...ui.Renderable) *Stack {
	return NewStack(columnDef, children...)
}
