package styled

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/fonts"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Render maps resolved props onto base. Layout props (gap, direction, maxWidth,
// alignment) are left to LayoutOf; shadows to ShadowOf.
func Render(props Props, r Resolver, base lipgloss.Style) lipgloss.Style {
	s := base

	if c, ok := colorProp(props, "backgroundColor", r); ok {
		s = s.Background(c)
	}
	if c, ok := colorProp(props, "color", r); ok {
		s = s.Foreground(c)
	}

	if width, ok := Pixels(props["borderWidth"], nil); ok && width > 0 {
		radius, _ := Pixels(props["borderRadius"], r.Radius)
		s = s.Border(BorderFor(width, radius))
		if c, ok := colorProp(props, "borderColor", r); ok {
			s = s.BorderForeground(c)
		}
	}

	top, right, bottom, left := edges(props, "padding", r)
	s = s.PaddingTop(tokens.Rows(top)).
		PaddingRight(tokens.Cells(right)).
		PaddingBottom(tokens.Rows(bottom)).
		PaddingLeft(tokens.Cells(left))

	top, right, bottom, left = edges(props, "margin", r)
	s = s.MarginTop(tokens.Rows(top)).
		MarginRight(tokens.Cells(right)).
		MarginBottom(tokens.Rows(bottom)).
		MarginLeft(tokens.Cells(left))

	if size, ok := sizeProp(props["width"], r); ok && !size.IsKeyword() {
		s = s.Width(tokens.Cells(size.Pixels))
	}
	if size, ok := sizeProp(props["height"], r); ok && !size.IsKeyword() {
		s = s.Height(tokens.Rows(size.Pixels))
	}

	s = typography(props, r, s)

	if opacity, ok := number(props["opacity"]); ok && opacity < 1 {
		s = s.Faint(true)
	}
	if v, _ := props["fontStyle"].(string); v == "italic" {
		s = s.Italic(true)
	}
	if v, _ := props["textDecorationLine"].(string); strings.Contains(v, "underline") {
		s = s.Underline(true)
	}
	if v, _ := props["textDecorationLine"].(string); strings.Contains(v, "line-through") {
		s = s.Strikethrough(true)
	}
	switch props["textAlign"] {
	case "center":
		s = s.Align(lipgloss.Center)
	case "right":
		s = s.Align(lipgloss.Right)
	}

	return s
}

func typography(props Props, r Resolver, s lipgloss.Style) lipgloss.Style {
	_, hasSize := props["fontSize"]
	_, hasWeight := props["fontWeight"]
	if !hasSize && !hasWeight {
		return s
	}

	font, _ := FontFor(props, r)
	sizePx, _ := fontScale(props["fontSize"], font.Size)
	weight, _ := fontScale(props["fontWeight"], font.Weight)
	return fonts.Attributes(s, sizePx, weight)
}

// FontFor resolves the props' font family, falling back to DefaultFontFamily.
func FontFor(props Props, r Resolver) (fonts.Font, bool) {
	family, _ := props["fontFamily"].(string)
	if family == "" {
		family = DefaultFontFamily
	}
	if key, ok := tokens.ParseRef(family); ok {
		family = key
	}
	return r.Font(family)
}

// fontScale reads a font scale value: "$7" is a step, "700" or 700 a literal.
func fontScale(v any, lookup func(fonts.Step) (int, bool)) (int, bool) {
	switch val := v.(type) {
	case string:
		if key, ok := tokens.ParseRef(val); ok {
			step, ok := fonts.ParseStep(key)
			if !ok {
				return 0, false
			}
			return lookup(step)
		}
		n, err := strconv.Atoi(val)
		return n, err == nil
	default:
		f, ok := number(v)
		return int(f), ok
	}
}

// BorderFor picks a terminal border shape from a width and radius in pixels.
func BorderFor(width, radius int) lipgloss.Border {
	switch {
	case width >= 2:
		return lipgloss.ThickBorder()
	case radius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// edges resolves a box property family ("padding" or "margin") to pixel edges.
// Side-specific props beat axis props, which beat the shorthand.
func edges(props Props, prefix string, r Resolver) (top, right, bottom, left int) {
	px := func(name string) (int, bool) {
		return Pixels(props[name], r.Space)
	}

	if v, ok := px(prefix); ok {
		top, right, bottom, left = v, v, v, v
	}
	if v, ok := px(prefix + "Vertical"); ok {
		top, bottom = v, v
	}
	if v, ok := px(prefix + "Horizontal"); ok {
		left, right = v, v
	}
	if v, ok := px(prefix + "Top"); ok {
		top = v
	}
	if v, ok := px(prefix + "Right"); ok {
		right = v
	}
	if v, ok := px(prefix + "Bottom"); ok {
		bottom = v
	}
	if v, ok := px(prefix + "Left"); ok {
		left = v
	}
	return top, right, bottom, left
}

// Pixels reads an int, float or "$token" value. lookup may be nil when token
// references are not allowed.
func Pixels(v any, lookup func(string) (int, bool)) (int, bool) {
	if s, ok := v.(string); ok {
		key, isRef := tokens.ParseRef(s)
		if !isRef || lookup == nil {
			return 0, false
		}
		return lookup(key)
	}
	f, ok := number(v)
	return int(f), ok
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func sizeProp(v any, r Resolver) (tokens.SizeValue, bool) {
	switch val := v.(type) {
	case string:
		if key, ok := tokens.ParseRef(val); ok {
			return r.Size(key)
		}
		if val == "" {
			return tokens.SizeValue{}, false
		}
		return tokens.SizeValue{Keyword: val}, true
	default:
		f, ok := number(v)
		if !ok {
			return tokens.SizeValue{}, false
		}
		return tokens.SizeValue{Pixels: int(f)}, true
	}
}

func colorProp(props Props, name string, r Resolver) (lipgloss.TerminalColor, bool) {
	v, ok := props[name].(string)
	if !ok || v == "" {
		return nil, false
	}
	return r.Color(v)
}
