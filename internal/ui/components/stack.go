package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Stack is the box primitive: a styled view arranging children in a column or a
// row. Direction, gap and alignment come from the resolved props.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	constraints Constraints
}

// NewStack creates a stack rendering def.
func NewStack(def *styled.Definition, children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(def),
		children:      children,
		constraints:   Unconstrained(),
	}
}

// View creates an unstyled view; children stack vertically.
func View(children ...ui.Renderable) *Stack {
	return NewStack(viewDef, children...)
}

// YStack creates a vertical stack.
func YStack(children ...ui.Renderable) *Stack {
	return NewStack(yStackDef, children...)
}

// XStack creates a horizontal stack.
func XStack(children ...ui.Renderable) *Stack {
	return NewStack(xStackDef, children...)
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	props := s.ResolveProps(ctx)
	layout := styled.LayoutOf(props, ctx.Scope)
	style := s.ComputeStyle(ctx, props)

	effective := s.mergeConstraints(ctx.Constraints)
	available := ctx.WithConstraints(effective).available()

	width := style.GetWidth()
	if width > 0 {
		// Width from props is the padded box; the frame adds borders and margins.
		width += style.GetHorizontalBorderSize() + style.GetHorizontalMargins()
	}
	if layout.FullWidth && available > 0 {
		width = available
	}
	if layout.MaxWidth > 0 {
		bound := available
		if bound == 0 {
			bound = ctx.Viewport.Width / tokens.CellWidth
		}
		if limit := tokens.Cells(layout.MaxWidth); width == 0 && bound > limit || width > limit {
			width = limit
		}
	}
	if width > 0 && available > 0 && width > available {
		width = available
	}

	inner := 0
	switch {
	case width > 0:
		inner = width - style.GetHorizontalFrameSize()
	case available > 0:
		inner = available - style.GetHorizontalFrameSize()
	}
	if inner < 0 {
		inner = 0
	}

	childCtx := ctx.WithConstraints(s.deriveChildConstraints(effective, layout, inner)).WithParentWidth(inner)

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	cross := lipgloss.Left
	if layout.AlignCenter {
		cross = lipgloss.Center
	}

	var content string
	switch {
	case len(views) == 0:
	case layout.Row && layout.Wrap && inner > 0:
		content = joinWrapped(views, layout.GapCells(), inner, cross)
	case layout.Row:
		content = joinHorizontal(views, layout.GapCells(), lipgloss.Top)
	default:
		content = joinVertical(views, layout.GapCells(), cross)
	}

	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins())
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	out := style.Render(content)

	if spec, ok := styled.ShadowOf(props, ctx.Scope); ok {
		out = styled.DropShadow(out, spec, ctx.NewStyle())
	}
	if layout.CenterSelf && available > lipgloss.Width(out) {
		out = lipgloss.PlaceHorizontal(available, lipgloss.Center, out)
	}
	return out
}

// mergeConstraints combines stack-level constraints with parent context constraints.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent

	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	if s.constraints.MinWidth > result.MinWidth {
		result.MinWidth = s.constraints.MinWidth
	}
	if s.constraints.MinHeight > result.MinHeight {
		result.MinHeight = s.constraints.MinHeight
	}
	return result
}

// deriveChildConstraints passes the inner width down. Rows that do not wrap
// split it evenly between children.
func (s *Stack) deriveChildConstraints(parent Constraints, layout styled.Layout, inner int) Constraints {
	child := parent
	child.MinWidth = 0
	if inner <= 0 {
		return child
	}
	child.MaxWidth = inner

	if layout.Row && !layout.Wrap && len(s.children) > 0 {
		available := inner - layout.GapCells()*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

func joinVertical(views []string, gap int, pos lipgloss.Position) string {
	if gap == 0 {
		return lipgloss.JoinVertical(pos, views...)
	}

	// An empty string is one blank line; gap-1 newlines make gap lines.
	spacer := strings.Repeat("\n", gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func joinHorizontal(views []string, gap int, pos lipgloss.Position) string {
	if gap == 0 {
		return lipgloss.JoinHorizontal(pos, views...)
	}

	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(pos, parts...)
}

// joinWrapped lays views out in rows no wider than width.
func joinWrapped(views []string, gap, width int, pos lipgloss.Position) string {
	var (
		lines   []string
		current []string
		used    int
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, joinHorizontal(current, gap, lipgloss.Top))
		}
		current, used = nil, 0
	}

	for _, view := range views {
		w := lipgloss.Width(view)
		next := used + w
		if len(current) > 0 {
			next += gap
		}
		if len(current) > 0 && next > width {
			flush()
			next = w
		}
		current = append(current, view)
		used = next
	}
	flush()

	vgap := 0
	if gap > 0 {
		vgap = 1
	}
	return joinVertical(lines, vgap, pos)
}

// WithVariant selects a variant value.
func (s *Stack) WithVariant(group, value string) *Stack {
	s.SetVariant(group, value)
	return s
}

// WithState sets the interaction state.
func (s *Stack) WithState(state styled.State) *Stack {
	s.SetState(state)
	return s
}

// WithProps layers inline props. Shorthands such as "p" and "bg" are accepted.
func (s *Stack) WithProps(props styled.Props) *Stack {
	s.SetProps(props)
	return s
}

// With applies token modifiers.
func (s *Stack) With(mods ...Modifier) *Stack {
	s.ApplyModifiers(mods...)
	return s
}

// WithStyle sets the lipgloss style the props render onto.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies lipgloss adjustments after the props.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces all children in the stack.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}
