package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the orientation of a Divider.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

// Divider renders a separator line in the border color.
type Divider struct {
	BaseComponent
	char      string
	width     int
	direction Direction
}

// NewDivider creates a horizontal divider.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(dividerDef),
		char:          "─",
		direction:     DirectionHorizontal,
	}
}

// HorizontalDivider creates a horizontal divider (convenience constructor).
func HorizontalDivider() *Divider {
	return NewDivider()
}

// VerticalDivider creates a vertical divider.
func VerticalDivider() *Divider {
	return NewDivider().WithChar("│").WithDirection(DirectionVertical)
}

// View renders the divider with the default context.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider. Without an explicit width it fills the
// available width.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	ctx = ctx.orDefault()
	width := d.width
	if width <= 0 {
		width = ctx.available()
	}
	if width <= 0 {
		width = 40
	}

	var content string
	if d.direction == DirectionHorizontal {
		content = strings.Repeat(d.char, width)
	} else {
		lines := make([]string, width)
		for i := range lines {
			lines[i] = d.char
		}
		content = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return d.ComputeStyle(ctx, d.ResolveProps(ctx)).Render(content)
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit length in cells.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithDirection sets the divider direction.
func (d *Divider) WithDirection(dir Direction) *Divider {
	d.direction = dir
	return d
}

// With applies token modifiers, e.g. Foreground("$primary").
func (d *Divider) With(mods ...Modifier) *Divider {
	d.ApplyModifiers(mods...)
	return d
}

// Width returns the divider width.
func (d *Divider) Width() int {
	return d.width
}

// DashedDivider creates a dashed divider.
func DashedDivider() *Divider {
	return NewDivider().WithChar("-")
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
