package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("overrides.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "overrides.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "overrides.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("themes.dark.primary", "must be a hex or rgba color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "themes.dark.primary", validationErr.Field)
	require.Contains(t, err.Error(), "must be a hex or rgba color")
}

func TestTokenErrorNamesComponentAndProperty(t *testing.T) {
	t.Parallel()

	err := NewTokenError("space", "huge").In("Card", "padding")

	var tokenErr *TokenError
	require.ErrorAs(t, error(err), &tokenErr)
	require.Equal(t, "huge", tokenErr.Key)
	require.Equal(t, `token error: Card.padding: unknown space token "huge"`, err.Error())
	require.Equal(t, `token error: unknown color token "nope"`, NewTokenError("color", "nope").Error())
}

func TestThemeErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not registered")
	err := NewThemeError("sepia", underlying)

	var themeErr *ThemeError
	require.ErrorAs(t, err, &themeErr)
	require.Equal(t, "sepia", themeErr.Name)
	require.True(t, stdErrors.Is(err, underlying))
}
