package styled

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Layout holds the container props a lipgloss.Style cannot express.
type Layout struct {
	// Gap between children in pixels.
	Gap int
	// Row lays children out horizontally.
	Row bool
	// Wrap lets a row break onto several lines.
	Wrap bool
	// AlignCenter centers children on the cross axis.
	AlignCenter bool
	// FullWidth stretches the box to the available width.
	FullWidth bool
	// MaxWidth caps the box width in pixels; 0 is unbounded.
	MaxWidth int
	// CenterSelf centers the box horizontally (marginHorizontal: "auto").
	CenterSelf bool
}

// LayoutOf extracts layout props.
func LayoutOf(props Props, r Resolver) Layout {
	var l Layout
	l.Gap, _ = Pixels(props["gap"], r.Space)
	l.Row = props["flexDirection"] == "row"
	l.Wrap = props["flexWrap"] == "wrap"
	l.AlignCenter = props["alignItems"] == "center"
	l.CenterSelf = props["marginHorizontal"] == "auto" || props["alignSelf"] == "center"

	if size, ok := sizeProp(props["width"], r); ok && size.Keyword == "100%" {
		l.FullWidth = true
	}
	if size, ok := sizeProp(props["maxWidth"], r); ok && !size.IsKeyword() {
		l.MaxWidth = size.Pixels
	}
	return l
}

// GapCells converts the gap to columns (rows) or lines (columns).
func (l Layout) GapCells() int {
	if l.Row {
		return tokens.Cells(l.Gap)
	}
	return tokens.Rows(l.Gap)
}

// ShadowSpec is a drop shadow in terminal cells.
type ShadowSpec struct {
	Color     lipgloss.TerminalColor
	OffsetX   int
	OffsetY   int
	Elevation int
}

// ShadowOf reads shadowColor, shadowOffset and elevation. A shadow is present
// when elevation is positive or a non-zero offset is set.
func ShadowOf(props Props, r Resolver) (ShadowSpec, bool) {
	elevation, _ := Pixels(props["elevation"], nil)
	offset, _ := props["shadowOffset"].(tokens.Offset)
	if elevation <= 0 && offset == (tokens.Offset{}) {
		return ShadowSpec{}, false
	}

	spec := ShadowSpec{
		OffsetX:   max(1, tokens.Cells(offset.Width)),
		OffsetY:   max(1, tokens.Rows(offset.Height)),
		Elevation: elevation,
	}
	if c, ok := colorProp(props, "shadowColor", r); ok {
		spec.Color = c
	}
	return spec, true
}

const shadowGlyph = "░"

// DropShadow draws the shadow to the right of and below a rendered block.
func DropShadow(block string, spec ShadowSpec, base lipgloss.Style) string {
	lines := strings.Split(block, "\n")
	width := lipgloss.Width(block)

	shade := base.UnsetBackground().UnsetPadding().UnsetMargins().UnsetBorderStyle()
	if spec.Color != nil {
		shade = shade.Foreground(spec.Color)
	}
	side := shade.Render(strings.Repeat(shadowGlyph, spec.OffsetX))
	gap := strings.Repeat(" ", spec.OffsetX)

	out := make([]string, 0, len(lines)+spec.OffsetY)
	for i, line := range lines {
		pad := strings.Repeat(" ", width-lipgloss.Width(line))
		if i < spec.OffsetY {
			out = append(out, line+pad+gap)
			continue
		}
		out = append(out, line+pad+side)
	}
	for i := 0; i < spec.OffsetY; i++ {
		out = append(out, gap+shade.Render(strings.Repeat(shadowGlyph, width)))
	}
	return strings.Join(out, "\n")
}
