package palette

import "time"

// FontFamily lists the face names of one typeface by weight.
type FontFamily struct {
	Thin     string
	Light    string
	Normal   string
	Medium   string
	SemiBold string
	Bold     string
}

// Typography groups the typefaces available to the app.
type Typography struct {
	Primary   FontFamily
	Secondary FontFamily
	Code      FontFamily
}

var (
	spaceGrotesk = FontFamily{
		Light:    "spaceGroteskLight",
		Normal:   "spaceGroteskRegular",
		Medium:   "spaceGroteskMedium",
		SemiBold: "spaceGroteskSemiBold",
		Bold:     "spaceGroteskBold",
	}
	sansSerif = FontFamily{
		Thin:   "sans-serif-thin",
		Light:  "sans-serif-light",
		Normal: "sans-serif",
		Medium: "sans-serif-medium",
	}
	monospace = FontFamily{
		Normal: "monospace",
	}
)

// DefaultTypography returns the typography table used by both themes.
func DefaultTypography() Typography {
	return Typography{
		Primary:   spaceGrotesk,
		Secondary: sansSerif,
		Code:      monospace,
	}
}

// Timing holds the named animation durations.
type Timing struct {
	Quick time.Duration
}

// DefaultTiming returns the timing table used by both themes.
func DefaultTiming() Timing {
	return Timing{Quick: 300 * time.Millisecond}
}

// Lookup returns a named duration. "quick" is the only registered name.
func (t Timing) Lookup(name string) (time.Duration, bool) {
	if name == "quick" {
		return t.Quick, true
	}
	return 0, false
}
