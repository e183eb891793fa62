// Package screens hosts the example screens as bubbletea models.
package screens

import (
	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/components"
)

// Frame carries the per-frame state a screen may animate on.
type Frame struct {
	// Pulse flips on every tick of the "quick" timing.
	Pulse bool
}

// Screen builds a component tree for the current render context.
type Screen interface {
	Title() string
	Build(ctx components.RenderContext, frame Frame) ui.Renderable
}

// Animated is implemented by screens that change with Frame.Pulse. Other
// screens are not re-rendered on ticks.
type Animated interface {
	Animated() bool
}

func animates(s Screen) bool {
	a, ok := s.(Animated)
	return ok && a.Animated()
}

// Render builds the screen and renders it against ctx.
func Render(s Screen, ctx components.RenderContext, frame Frame) string {
	root := s.Build(ctx, frame)
	if cr, ok := root.(components.ContextualRenderable); ok {
		return cr.ViewWithContext(ctx)
	}
	return root.View()
}
