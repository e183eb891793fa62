package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

type fakeDetector bool

func (f fakeDetector) HasDarkBackground() bool { return bool(f) }

func TestLightAndDarkShareEverythingButColors(t *testing.T) {
	t.Parallel()

	light := Light()
	dark := Dark()

	assert.NotEqual(t, light, dark)
	assert.False(t, light.IsDark)
	assert.True(t, dark.IsDark)
	assert.False(t, light.Colors.Equal(dark.Colors))

	assert.Equal(t, light.Spacing, dark.Spacing)
	assert.Equal(t, light.Typography, dark.Typography)
	assert.Equal(t, light.Timing, dark.Timing)
}

func TestThemesAreStableAcrossCalls(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Light(), Light())
	assert.Equal(t, NameLight, Light().Name)
	assert.Equal(t, NameDark, Dark().Name)
}

func TestByName(t *testing.T) {
	t.Parallel()

	dark, err := ByName(NameDark)
	require.NoError(t, err)
	assert.True(t, dark.IsDark)

	_, err = ByName("sepia")
	var themeErr *zerrors.ThemeError
	require.ErrorAs(t, err, &themeErr)
	assert.Equal(t, "sepia", themeErr.Name)
}

func TestSelectAppearance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		appearance string
		detector   DarkBackgroundDetector
		wantDark   bool
		wantErr    bool
	}{
		{name: "explicit light", appearance: "light"},
		{name: "empty defaults to light", appearance: ""},
		{name: "explicit dark", appearance: "DARK", wantDark: true},
		{name: "auto on dark terminal", appearance: "auto", detector: fakeDetector(true), wantDark: true},
		{name: "auto on light terminal", appearance: "auto", detector: fakeDetector(false)},
		{name: "unknown", appearance: "sepia", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.appearance, tt.detector)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDark, got.IsDark)
		})
	}
}

func TestEngineValues(t *testing.T) {
	t.Parallel()

	light := LightValues()
	dark := DarkValues()

	bg, ok := light.Get("background")
	require.True(t, ok)
	assert.Equal(t, "#F4F2F1", bg)

	darkBg, _ := dark.Get("background")
	assert.Equal(t, "#191015", darkBg)

	primary, _ := light.Get("primary")
	assert.Equal(t, "#C76542", primary)
	darkPrimary, _ := dark.Get("primary")
	assert.Equal(t, "#D28468", darkPrimary)

	_, ok = dark.Get("accent300")
	assert.True(t, ok, "palette entries are registered directly")

	assert.Equal(t, light.Names(), dark.Names(), "both themes register the same names")
}

func TestValuesTerminal(t *testing.T) {
	t.Parallel()

	values := LightValues()

	primary, ok := values.Terminal("$primary")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#c76542"), primary)

	transparent, ok := values.Terminal("$colorTransparent")
	require.True(t, ok)
	assert.Equal(t, lipgloss.NoColor{}, transparent)

	literal, ok := values.Terminal("#000000")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#000000"), literal)

	_, ok = values.Terminal("$missing")
	assert.False(t, ok)

	overridden := values.With("primary", "#112233")
	c, _ := overridden.Terminal("$primary")
	assert.Equal(t, lipgloss.Color("#112233"), c)
	c, _ = values.Terminal("$primary")
	assert.Equal(t, lipgloss.Color("#c76542"), c, "With must not mutate the original")
}
