package palette

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var rgbaPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)

// RGBA is a parsed color with straight alpha.
type RGBA struct {
	Color colorful.Color
	Alpha float64
}

// Parse reads a hex ("#C76542") or functional ("rgba(25, 16, 21, 0.2)") color,
// or the keyword "transparent".
func Parse(value string) (RGBA, error) {
	value = strings.TrimSpace(value)
	if value == "transparent" {
		return RGBA{}, nil
	}
	if strings.HasPrefix(value, "#") {
		c, err := colorful.Hex(value)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse hex color %q: %w", value, err)
		}
		return RGBA{Color: c, Alpha: 1}, nil
	}

	m := rgbaPattern.FindStringSubmatch(value)
	if m == nil {
		return RGBA{}, fmt.Errorf("parse color %q: unsupported format", value)
	}

	channels := make([]float64, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return RGBA{}, fmt.Errorf("parse color %q: channel out of range", value)
		}
		channels[i] = float64(n) / 255
	}

	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil || a > 1 {
			return RGBA{}, fmt.Errorf("parse color %q: alpha out of range", value)
		}
		alpha = a
	}

	return RGBA{Color: colorful.Color{R: channels[0], G: channels[1], B: channels[2]}, Alpha: alpha}, nil
}

// Terminal flattens a color onto the given opaque background so it can be shown
// on a terminal, which has no alpha channel. Fully transparent colors yield
// lipgloss.NoColor.
func Terminal(value, background string) (lipgloss.TerminalColor, error) {
	c, err := Parse(value)
	if err != nil {
		return nil, err
	}
	if c.Alpha <= 0 {
		return lipgloss.NoColor{}, nil
	}
	if c.Alpha >= 1 {
		return lipgloss.Color(c.Color.Hex()), nil
	}

	bg, err := Parse(background)
	if err != nil {
		return nil, fmt.Errorf("blend background: %w", err)
	}
	return lipgloss.Color(bg.Color.BlendRgb(c.Color, c.Alpha).Clamped().Hex()), nil
}
