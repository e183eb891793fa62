package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceScale(t *testing.T) {
	t.Parallel()

	expected := map[Key]int{
		XXXS: 2, XXS: 4, XS: 8, SM: 12, MD: 16, LG: 24, XL: 32, XXL: 48, XXXL: 64,
	}
	table := Spacing()
	require.Equal(t, len(expected), table.Len())
	for key, want := range expected {
		got, ok := table.Get(key)
		require.True(t, ok, "missing %s", key)
		assert.Equal(t, want, got, "space %s", key)
	}
}

func TestSpaceScaleIsIncreasing(t *testing.T) {
	t.Parallel()

	table := Spacing()
	prev := 0
	for _, key := range table.Keys() {
		value, _ := table.Get(key)
		assert.Greater(t, value, prev, "space %s should grow the scale", key)
		prev = value
	}
}

func TestSpaceTrueAliasesMedium(t *testing.T) {
	t.Parallel()

	value, ok := Space().Get(True)
	require.True(t, ok)
	assert.Equal(t, 16, value)
	assert.False(t, Spacing().Has(True), "the app scale should not carry the engine default")
}

func TestTableWithDoesNotMutate(t *testing.T) {
	t.Parallel()

	original := Spacing()
	changed := original.With(MD, 20)

	v, _ := original.Get(MD)
	assert.Equal(t, 16, v)
	v, _ = changed.Get(MD)
	assert.Equal(t, 20, v)
	assert.Equal(t, original.Keys(), changed.Keys())
}

func TestRadiusAndZIndex(t *testing.T) {
	t.Parallel()

	full, ok := Radius().Get(Full)
	require.True(t, ok)
	assert.Equal(t, 999, full)

	lg, _ := Radius().Get(LG)
	assert.Equal(t, 12, lg)

	z, _ := ZIndex().Get(XXXL)
	assert.Equal(t, 1000, z)
	assert.Equal(t, Spacing().Keys(), ZIndex().Keys(), "z-index keys follow the space keys")
}

func TestSizeKeywords(t *testing.T) {
	t.Parallel()

	size := Size()
	full, ok := size.Get(Full)
	require.True(t, ok)
	assert.True(t, full.IsKeyword())
	assert.Equal(t, "100%", full.Keyword)

	lg, ok := size.Get(LG)
	require.True(t, ok)
	assert.Equal(t, 24, lg.Pixels)

	_, ok = size.Get("giant")
	assert.False(t, ok)
}

func TestShadowLevels(t *testing.T) {
	t.Parallel()

	md, ok := ShadowFor(MD)
	require.True(t, ok)
	assert.Equal(t, Offset{Width: 0, Height: 2}, md.Offset)
	assert.Equal(t, 0.1, md.Opacity)
	assert.Equal(t, 2, md.Elevation)
	assert.Equal(t, []Key{SM, MD, LG, XL}, ShadowKeys())
}

func TestRefRoundTrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$md", Ref(MD))
	key, ok := ParseRef("$backgroundStrong")
	require.True(t, ok)
	assert.Equal(t, "backgroundStrong", key)

	_, ok = ParseRef("md")
	assert.False(t, ok)
	_, ok = ParseRef("$")
	assert.False(t, ok)
}

func TestCellConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		px    int
		cells int
		rows  int
	}{
		{px: 0, cells: 0, rows: 0},
		{px: 2, cells: 1, rows: 1},
		{px: 16, cells: 2, rows: 1},
		{px: 24, cells: 3, rows: 2},
		{px: 64, cells: 8, rows: 4},
		{px: -4, cells: 0, rows: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.cells, Cells(tt.px), "cells for %dpx", tt.px)
		assert.Equal(t, tt.rows, Rows(tt.px), "rows for %dpx", tt.px)
	}
}
