// Package theme assembles the two theme records (light and dark) from the color,
// spacing, typography and timing tables, and derives the per-theme values the
// styling engine resolves "$name" references against.
package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/palette"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

// Theme is the typed theme record handed to the host application.
type Theme struct {
	Name       string
	Colors     palette.Colors
	Spacing    tokens.Table
	Typography palette.Typography
	Timing     palette.Timing
	IsDark     bool
}

// Theme names registered with the engine.
const (
	NameLight = "light"
	NameDark  = "dark"
)

// Appearance values accepted by Select.
const (
	AppearanceLight = "light"
	AppearanceDark  = "dark"
	AppearanceAuto  = "auto"
)

var (
	lightTheme = Theme{
		Name:       NameLight,
		Colors:     palette.Light(),
		Spacing:    tokens.Spacing(),
		Typography: palette.DefaultTypography(),
		Timing:     palette.DefaultTiming(),
		IsDark:     false,
	}
	darkTheme = Theme{
		Name:       NameDark,
		Colors:     palette.Dark(),
		Spacing:    tokens.Spacing(),
		Typography: palette.DefaultTypography(),
		Timing:     palette.DefaultTiming(),
		IsDark:     true,
	}
)

// Light returns the light theme.
func Light() Theme {
	return lightTheme
}

// Dark returns the dark theme.
func Dark() Theme {
	return darkTheme
}

// ByName returns the theme registered under name.
func ByName(name string) (Theme, error) {
	switch name {
	case NameLight:
		return Light(), nil
	case NameDark:
		return Dark(), nil
	default:
		return Theme{}, zerrors.NewThemeError(name, nil)
	}
}

// DarkBackgroundDetector reports whether the output has a dark background.
// *lipgloss.Renderer satisfies it.
type DarkBackgroundDetector interface {
	HasDarkBackground() bool
}

type defaultDetector struct{}

func (defaultDetector) HasDarkBackground() bool {
	return lipgloss.HasDarkBackground()
}

// Select picks a theme for an appearance. "auto" asks the detector (or the
// default lipgloss renderer when nil) whether the terminal background is dark.
func Select(appearance string, detector DarkBackgroundDetector) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(appearance)) {
	case "", AppearanceLight:
		return Light(), nil
	case AppearanceDark:
		return Dark(), nil
	case AppearanceAuto:
		if detector == nil {
			detector = defaultDetector{}
		}
		if detector.HasDarkBackground() {
			return Dark(), nil
		}
		return Light(), nil
	default:
		return Theme{}, zerrors.NewThemeError(appearance, fmt.Errorf("appearance must be one of %s, %s, %s", AppearanceLight, AppearanceDark, AppearanceAuto))
	}
}
