package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/zoomies/internal/ui/media"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/palette"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/styled"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/theme"
	"github.com/alexisbeaulieu97/zoomies/internal/ui/tokens"
	zerrors "github.com/alexisbeaulieu97/zoomies/pkg/errors"
)

func TestDefaultIsBuiltOnce(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestDefaultRegistersEngineTables(t *testing.T) {
	cfg := Default()

	md, ok := cfg.Space().Get(tokens.True)
	require.True(t, ok)
	assert.Equal(t, 16, md)

	full, ok := cfg.Size().Get(tokens.Full)
	require.True(t, ok)
	assert.Equal(t, "100%", full.Keyword)

	assert.Equal(t, []string{FontBody, FontHeading, FontMono}, cfg.FontNames())
	assert.Equal(t, []string{theme.NameDark, theme.NameLight}, cfg.ThemeNames())
	assert.Len(t, cfg.Media().Conditions(), 14)
	assert.True(t, cfg.Settings().ShouldAddPrefersColorThemes)
	assert.True(t, cfg.Settings().ThemeClassNameOnRoot)
}

func TestThemeUnknownName(t *testing.T) {
	_, err := Default().Theme("sepia")
	require.Error(t, err)

	var themeErr *zerrors.ThemeError
	require.True(t, errors.As(err, &themeErr))
	assert.Equal(t, "sepia", themeErr.Name)

	_, err = Default().Scope("sepia")
	require.Error(t, err)
}

func TestScopeResolvesTokens(t *testing.T) {
	scope := Default().MustScope(theme.NameLight)

	px, ok := scope.Space("lg")
	require.True(t, ok)
	assert.Equal(t, 24, px)

	r, ok := scope.Radius("full")
	require.True(t, ok)
	assert.Equal(t, 999, r)

	_, ok = scope.Color("$backgroundStrong")
	assert.True(t, ok)
	_, ok = scope.Color("$nope")
	assert.False(t, ok)

	assert.True(t, scope.Animation("quick"))
	assert.False(t, scope.Animation("lazy"))
	assert.True(t, scope.HasMedia(media.GtMD))
	assert.Equal(t, theme.NameLight, scope.ThemeName())
}

func TestScopeResolvesColorTokensUnderEveryTheme(t *testing.T) {
	cfg := Default()
	semantic := []string{
		palette.Text, palette.TextDim, palette.Background, palette.Border,
		palette.Tint, palette.TintInactive, palette.Separator, palette.Error,
		palette.ErrorBackground, palette.Transparent,
	}

	for _, name := range []string{theme.NameLight, theme.NameDark} {
		scope := cfg.MustScope(name)
		for _, key := range semantic {
			_, ok := scope.Color("$" + key)
			assert.True(t, ok, "%s: $%s should resolve", name, key)
		}
		_, ok := scope.Color("$neutral400")
		assert.True(t, ok)
	}

	def := styled.New("Label", styled.Props{
		"color":           "$textDim",
		"borderColor":     "$separator",
		"backgroundColor": "$errorBackground",
	})
	require.NoError(t, cfg.Validate(def))
}

func TestScopePrefersThemeValuesOverColorTokens(t *testing.T) {
	cfg := Default()
	dark := cfg.MustScope(theme.NameDark)

	themed, ok := dark.Color("$background")
	require.True(t, ok)
	raw, ok := mustTheme(t, cfg, theme.NameDark).Get("background")
	require.True(t, ok)
	want, err := palette.Terminal(raw, raw)
	require.NoError(t, err)
	assert.Equal(t, want, themed)

	token, ok := cfg.Color(palette.Background)
	require.True(t, ok)
	assert.NotEqual(t, raw, token, "the dark theme background must not fall through to the color table")
}

func TestExpandShorthands(t *testing.T) {
	cfg := Default()

	out := cfg.Expand(styled.Props{
		"p":       "$md",
		"bg":      "$background",
		"px":      "$lg",
		"m":       "$sm",
		"margin":  "$xl",
		"opacity": 0.5,
		styled.HoverStyle: styled.Props{
			"br": "$lg",
		},
	})

	assert.Equal(t, "$md", out["padding"])
	assert.Equal(t, "$background", out["backgroundColor"])
	assert.Equal(t, "$lg", out["paddingHorizontal"])
	assert.Equal(t, "$xl", out["margin"], "explicit property wins over shorthand")
	assert.Equal(t, 0.5, out["opacity"])
	assert.NotContains(t, out, "p")
	assert.NotContains(t, out, "m")

	hover, ok := out[styled.HoverStyle].(styled.Props)
	require.True(t, ok)
	assert.Equal(t, "$lg", hover["borderRadius"])
}

func TestValidateDefinitions(t *testing.T) {
	cfg := Default()

	good := styled.New("Card", styled.Props{
		"backgroundColor": "$backgroundStrong",
		"borderRadius":    "$lg",
		"padding":         "$lg",
		"borderColor":     "$borderColor",
	}, styled.WithMedia(media.GtSM, styled.Props{"padding": "$xl"}))
	require.NoError(t, cfg.Validate(good))

	bad := styled.New("Card", styled.Props{"padding": "$huge", "color": "$neon"})
	err := cfg.Validate(bad)
	require.Error(t, err)

	var tokenErr *zerrors.TokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Contains(t, err.Error(), "theme dark")
	assert.Contains(t, err.Error(), "theme light")
	assert.Contains(t, err.Error(), `unknown space token "huge"`)
	assert.Contains(t, err.Error(), `unknown color token "$neon"`)
}

func TestLoadOverridesAndApply(t *testing.T) {
	o, err := LoadOverrides(filepath.Join("testdata", "overrides.yaml"))
	require.NoError(t, err)
	require.False(t, o.Empty())

	base := Default()
	cfg := base.WithOverrides(o)

	md, _ := cfg.Space().Get(tokens.MD)
	assert.Equal(t, 20, md)
	huge, ok := cfg.Size().Get("huge")
	require.True(t, ok)
	assert.Equal(t, 96, huge.Pixels)

	lg, _ := cfg.Radius().Get(tokens.LG)
	assert.Equal(t, 16, lg)

	light, err := cfg.Theme(theme.NameLight)
	require.NoError(t, err)
	primary, _ := light.Get("primary")
	assert.Equal(t, "#0055FF", primary)

	text, ok := cfg.Color(palette.Text)
	require.True(t, ok)
	assert.Equal(t, "#111111", text)
	tc, ok := cfg.MustScope(theme.NameLight).Color("$text")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#111111"), tc)
	baseText, _ := base.Color(palette.Text)
	assert.NotEqual(t, "#111111", baseText)

	q, ok := cfg.Media().Lookup(media.GtSM)
	require.True(t, ok)
	assert.Equal(t, 900, q.MinWidth)

	baseMD, _ := base.Space().Get(tokens.MD)
	assert.Equal(t, 16, baseMD, "overrides must not mutate the source config")
	basePrimary, _ := mustTheme(t, base, theme.NameLight).Get("primary")
	assert.NotEqual(t, "#0055FF", basePrimary)
}

func TestParseOverridesRejectsInvalidColor(t *testing.T) {
	_, err := ParseOverrides("overrides.yaml", []byte("themes:\n  light:\n    primary: blurple\n"))
	require.Error(t, err)

	var validationErr *zerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Field, "themes.light")
}

func TestParseOverridesRejectsBadKeysAndBounds(t *testing.T) {
	cases := map[string]string{
		"token key":   "space:\n  \"9lives\": 4\n",
		"negative":    "radius:\n  sm: -1\n",
		"media order": "media:\n  sm:\n    minWidth: 800\n    maxWidth: 600\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseOverrides("overrides.yaml", []byte(doc))
			var validationErr *zerrors.ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
		})
	}
}

func TestParseOverridesReportsLine(t *testing.T) {
	_, err := ParseOverrides("overrides.yaml", []byte("space:\n  md: 4\nbogus: true\n"))
	require.Error(t, err)

	var parseErr *zerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 3, parseErr.Line)
}

func TestParseOverridesEmptyDocument(t *testing.T) {
	o, err := ParseOverrides("overrides.yaml", []byte("\n"))
	require.NoError(t, err)
	assert.True(t, o.Empty())
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *zerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func mustTheme(t *testing.T, cfg *Config, name string) theme.Values {
	t.Helper()
	v, err := cfg.Theme(name)
	require.NoError(t, err)
	return v
}
