// Package palette defines the raw color ramps and the semantic color records for
// the light and dark appearances, along with the typography and timing tables the
// themes share.
package palette

import "sort"

// Colors is a read-only color record: the palette ramps plus semantic entries.
type Colors struct {
	palette  map[string]string
	semantic map[string]string
}

// Semantic color keys.
const (
	Text            = "text"
	TextDim         = "textDim"
	Background      = "background"
	Border          = "border"
	Tint            = "tint"
	TintInactive    = "tintInactive"
	Separator       = "separator"
	Error           = "error"
	ErrorBackground = "errorBackground"
	Transparent     = "transparent"
)

const transparent = "rgba(0, 0, 0, 0)"

var lightPalette = map[string]string{
	"neutral100": "#FFFFFF",
	"neutral200": "#F4F2F1",
	"neutral300": "#D7CEC9",
	"neutral400": "#B6ACA6",
	"neutral500": "#978F8A",
	"neutral600": "#564E4A",
	"neutral700": "#3C3836",
	"neutral800": "#191015",
	"neutral900": "#000000",

	"primary100": "#F4E0D9",
	"primary200": "#E8C1B4",
	"primary300": "#DDA28E",
	"primary400": "#D28468",
	"primary500": "#C76542",
	"primary600": "#A54F31",

	"secondary100": "#DCDDE9",
	"secondary200": "#BCC0D6",
	"secondary300": "#9196B9",
	"secondary400": "#626894",
	"secondary500": "#41476E",

	"accent100": "#FFEED4",
	"accent200": "#FFE1B2",
	"accent300": "#FDD495",
	"accent400": "#FBC878",
	"accent500": "#FFBB50",

	"angry100": "#F2D6CD",
	"angry500": "#C03403",

	"overlay20": "rgba(25, 16, 21, 0.2)",
	"overlay50": "rgba(25, 16, 21, 0.5)",
}

var darkPalette = map[string]string{
	"neutral900": "#FFFFFF",
	"neutral800": "#F4F2F1",
	"neutral700": "#D7CEC9",
	"neutral600": "#B6ACA6",
	"neutral500": "#978F8A",
	"neutral400": "#564E4A",
	"neutral300": "#3C3836",
	"neutral200": "#191015",
	"neutral100": "#000000",

	"primary600": "#F4E0D9",
	"primary500": "#E8C1B4",
	"primary400": "#DDA28E",
	"primary300": "#D28468",
	"primary200": "#C76542",
	"primary100": "#A54F31",

	"secondary500": "#DCDDE9",
	"secondary400": "#BCC0D6",
	"secondary300": "#9196B9",
	"secondary200": "#626894",
	"secondary100": "#41476E",

	"accent500": "#FFEED4",
	"accent400": "#FFE1B2",
	"accent300": "#FDD495",
	"accent200": "#FBC878",
	"accent100": "#FFBB50",

	"angry100": "#F2D6CD",
	"angry500": "#C03403",

	"overlay20": "rgba(25, 16, 21, 0.2)",
	"overlay50": "rgba(25, 16, 21, 0.5)",
}

func semanticFor(p map[string]string) map[string]string {
	return map[string]string{
		Transparent:     transparent,
		Text:            p["neutral800"],
		TextDim:         p["neutral600"],
		Background:      p["neutral200"],
		Border:          p["neutral400"],
		Tint:            p["primary500"],
		TintInactive:    p["neutral300"],
		Separator:       p["neutral300"],
		Error:           p["angry500"],
		ErrorBackground: p["angry100"],
	}
}

var (
	light = Colors{palette: lightPalette, semantic: semanticFor(lightPalette)}
	dark  = Colors{palette: darkPalette, semantic: semanticFor(darkPalette)}
)

// Light returns the light appearance colors.
func Light() Colors {
	return light
}

// Dark returns the dark appearance colors. The neutral and brand ramps are flipped
// so that semantic keys keep their meaning on a dark background.
func Dark() Colors {
	return dark
}

// Get returns the value for a palette or semantic key.
func (c Colors) Get(key string) (string, bool) {
	if v, ok := c.semantic[key]; ok {
		return v, true
	}
	v, ok := c.palette[key]
	return v, ok
}

// Keys returns every palette and semantic key, sorted.
func (c Colors) Keys() []string {
	keys := make([]string, 0, len(c.palette)+len(c.semantic))
	for k := range c.palette {
		keys = append(keys, k)
	}
	for k := range c.semantic {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PaletteKeys returns only the ramp keys, sorted.
func (c Colors) PaletteKeys() []string {
	keys := make([]string, 0, len(c.palette))
	for k := range c.palette {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Palette returns a copy of the ramp entries.
func (c Colors) Palette() map[string]string {
	out := make(map[string]string, len(c.palette))
	for k, v := range c.palette {
		out[k] = v
	}
	return out
}

// Equal reports whether two records hold the same entries.
func (c Colors) Equal(other Colors) bool {
	return mapsEqual(c.palette, other.palette) && mapsEqual(c.semantic, other.semantic)
}

func mapsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}
