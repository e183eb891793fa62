// Package fonts describes the typeface registered with the styling engine and maps
// its size and weight steps onto terminal text attributes.
package fonts

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Step indexes a font scale. DefaultStep stands for the engine's "true" key.
type Step int

// DefaultStep selects the scale's default entry.
const DefaultStep Step = 0

// Face names the font file registered for one weight.
type Face struct {
	Weight int
	Normal string
}

// Font is a typeface with its size, line height, weight and letter spacing scales.
type Font struct {
	Family        string
	size          map[Step]int
	lineHeight    map[Step]int
	weight        map[Step]int
	letterSpacing map[Step]float64
	faces         []Face
}

var spaceGrotesk = Font{
	Family: "SpaceGrotesk",
	size: map[Step]int{
		1: 10, 2: 12, 3: 14, 4: 16, 5: 18, 6: 20, 7: 24, 8: 28,
		9: 32, 10: 40, 11: 48, 12: 56, 13: 64, 14: 72, 15: 80, 16: 96,
		DefaultStep: 16,
	},
	lineHeight: map[Step]int{
		1: 14, 2: 16, 3: 18, 4: 22, 5: 24, 6: 26, 7: 30, 8: 34,
		9: 38, 10: 46, 11: 54, 12: 62, 13: 70, 14: 78, 15: 86, 16: 102,
		DefaultStep: 22,
	},
	weight: map[Step]int{
		4: 400, 5: 500, 6: 600, 7: 700, 8: 800,
		DefaultStep: 400,
	},
	letterSpacing: map[Step]float64{
		4: 0, 5: -0.5, 6: -1, 7: -1.5, 8: -2,
		DefaultStep: 0,
	},
	faces: []Face{
		{Weight: 400, Normal: "SpaceGrotesk_400Regular"},
		{Weight: 500, Normal: "SpaceGrotesk_500Medium"},
		{Weight: 600, Normal: "SpaceGrotesk_600SemiBold"},
		{Weight: 700, Normal: "SpaceGrotesk_700Bold"},
	},
}

// SpaceGrotesk returns the app typeface.
func SpaceGrotesk() Font {
	return spaceGrotesk
}

// ParseStep reads a scale key as written in token references: "9" or "true".
func ParseStep(key string) (Step, bool) {
	if key == "true" {
		return DefaultStep, true
	}
	n, err := strconv.Atoi(key)
	if err != nil || n <= 0 {
		return 0, false
	}
	return Step(n), true
}

// Size returns the pixel size for a step.
func (f Font) Size(step Step) (int, bool) {
	v, ok := f.size[step]
	return v, ok
}

// LineHeight returns the pixel line height for a step.
func (f Font) LineHeight(step Step) (int, bool) {
	v, ok := f.lineHeight[step]
	return v, ok
}

// Weight returns the numeric weight for a step.
func (f Font) Weight(step Step) (int, bool) {
	v, ok := f.weight[step]
	return v, ok
}

// LetterSpacing returns the letter spacing for a step.
func (f Font) LetterSpacing(step Step) (float64, bool) {
	v, ok := f.letterSpacing[step]
	return v, ok
}

// Face returns the registered face for a numeric weight.
func (f Font) Face(weight int) (Face, bool) {
	for _, face := range f.faces {
		if face.Weight == weight {
			return face, true
		}
	}
	return Face{}, false
}

// Faces returns the registered faces ordered by weight.
func (f Font) Faces() []Face {
	out := make([]Face, len(f.faces))
	copy(out, f.faces)
	return out
}

// Terminal text attributes derived from the font scales.
const (
	boldWeight      = 600
	faintWeight     = 300
	displayFontSize = 28
)

// Attributes maps a pixel size and numeric weight onto terminal text attributes.
// Terminals have a single glyph size, so display sizes are underlined instead.
func Attributes(base lipgloss.Style, sizePx, weight int) lipgloss.Style {
	if weight >= boldWeight {
		base = base.Bold(true)
	}
	if weight > 0 && weight <= faintWeight {
		base = base.Faint(true)
	}
	if sizePx >= displayFontSize {
		base = base.Underline(true)
	}
	return base
}

// Style renders the given size and weight steps as terminal attributes.
func (f Font) Style(size, weight Step) lipgloss.Style {
	px, _ := f.Size(size)
	w, _ := f.Weight(weight)
	return Attributes(lipgloss.NewStyle(), px, w)
}
