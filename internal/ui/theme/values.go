package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/palette"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
)

// Values is the flat name-to-color table a theme registers with the engine.
type Values struct {
	name   string
	values map[string]string
}

type valueSource struct {
	name string
	key  string
}

// The engine theme sources, as registered for each appearance. Both resolve
// against the light color record; the dark theme simply picks darker ramp steps.
var (
	lightSources = []valueSource{
		{"background", palette.Background},
		{"backgroundHover", "neutral300"},
		{"backgroundPress", "neutral400"},
		{"backgroundFocus", "neutral300"},
		{"backgroundStrong", "neutral100"},
		{"backgroundTransparent", palette.Transparent},
		{"color", palette.Text},
		{"colorHover", palette.Text},
		{"colorPress", palette.Text},
		{"colorFocus", palette.Text},
		{"colorTransparent", palette.Transparent},
		{"borderColor", palette.Border},
		{"borderColorHover", "neutral500"},
		{"borderColorPress", "neutral600"},
		{"borderColorFocus", palette.Tint},
		{"placeholderColor", palette.TextDim},
		{"primary", "primary500"},
		{"primaryHover", "primary600"},
		{"secondary", "secondary500"},
		{"accent", "accent500"},
		{"error", palette.Error},
		{"success", "primary500"},
		{"warning", "accent500"},
		{"shadowColor", "neutral900"},
		{"shadowColorHover", "neutral900"},
		{"shadowColorPress", "neutral900"},
		{"shadowColorFocus", "neutral900"},
	}

	darkSources = []valueSource{
		{"background", "neutral800"},
		{"backgroundHover", "neutral700"},
		{"backgroundPress", "neutral600"},
		{"backgroundFocus", "neutral700"},
		{"backgroundStrong", "neutral900"},
		{"backgroundTransparent", palette.Transparent},
		{"color", "neutral100"},
		{"colorHover", "neutral100"},
		{"colorPress", "neutral100"},
		{"colorFocus", "neutral100"},
		{"colorTransparent", palette.Transparent},
		{"borderColor", "neutral600"},
		{"borderColorHover", "neutral500"},
		{"borderColorPress", "neutral400"},
		{"borderColorFocus", palette.Tint},
		{"placeholderColor", "neutral500"},
		{"primary", "primary400"},
		{"primaryHover", "primary300"},
		{"secondary", "secondary400"},
		{"accent", "accent400"},
		{"error", palette.Error},
		{"success", "primary400"},
		{"warning", "accent400"},
		{"shadowColor", "neutral900"},
		{"shadowColorHover", "neutral900"},
		{"shadowColorPress", "neutral900"},
		{"shadowColorFocus", "neutral900"},
	}
)

func buildValues(name string, colors palette.Colors, sources []valueSource) Values {
	values := make(map[string]string, len(sources)+len(colors.PaletteKeys()))
	for k, v := range colors.Palette() {
		values[k] = v
	}
	for _, src := range sources {
		if v, ok := colors.Get(src.key); ok {
			values[src.name] = v
		}
	}
	return Values{name: name, values: values}
}

// LightValues returns the engine values for the light theme.
func LightValues() Values {
	return buildValues(NameLight, palette.Light(), lightSources)
}

// DarkValues returns the engine values for the dark theme.
func DarkValues() Values {
	return buildValues(NameDark, palette.Light(), darkSources)
}

// Name returns the theme name the values are registered under.
func (v Values) Name() string {
	return v.name
}

// Get returns the authored color string for a name.
func (v Values) Get(name string) (string, bool) {
	c, ok := v.values[name]
	return c, ok
}

// Names returns every registered name, sorted.
func (v Values) Names() []string {
	names := make([]string, 0, len(v.values))
	for k := range v.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// With returns a copy with name set to color.
func (v Values) With(name, color string) Values {
	values := make(map[string]string, len(v.values)+1)
	for k, c := range v.values {
		values[k] = c
	}
	values[name] = color
	return Values{name: v.name, values: values}
}

// Terminal resolves a "$name" reference, a bare name, or a literal color to a
// terminal color. Translucent colors are flattened onto the theme background.
func (v Values) Terminal(ref string) (lipgloss.TerminalColor, bool) {
	raw := ref
	if key, ok := tokens.ParseRef(ref); ok {
		c, found := v.values[key]
		if !found {
			return nil, false
		}
		raw = c
	} else if c, found := v.values[ref]; found {
		raw = c
	}
	return v.Flatten(raw)
}

// Flatten converts an authored color string to a terminal color, blending
// translucent colors onto the theme background.
func (v Values) Flatten(raw string) (lipgloss.TerminalColor, bool) {
	bg := v.values["background"]
	if bg == "" {
		bg = "#000000"
	}
	c, err := palette.Terminal(raw, bg)
	if err != nil {
		return nil, false
	}
	return c, true
}
