package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthJustAboveXSMatchesGtXS(t *testing.T) {
	t.Parallel()

	set := Default()
	vp := Viewport{Width: 661, Height: 900}

	assert.True(t, set.Matches(GtXS, vp))
	assert.False(t, set.Matches(XS, vp))
}

func TestBoundariesAreInclusive(t *testing.T) {
	t.Parallel()

	set := Default()

	tests := []struct {
		width int
		match []string
		miss  []string
	}{
		{width: 660, match: []string{XS, SM}, miss: []string{GtXS}},
		{width: 800, match: []string{SM, GtXS}, miss: []string{XS, GtSM}},
		{width: 801, match: []string{MD, GtSM}, miss: []string{SM}},
		{width: 1021, match: []string{LG, GtMD}, miss: []string{MD, GtLG}},
		{width: 1281, match: []string{XL, XXL, GtLG}, miss: []string{LG}},
		{width: 1601, match: []string{GtLG}, miss: []string{XXL}},
	}

	for _, tt := range tests {
		vp := Viewport{Width: tt.width, Height: 500}
		for _, name := range tt.match {
			assert.True(t, set.Matches(name, vp), "%s should match width %d", name, tt.width)
		}
		for _, name := range tt.miss {
			assert.False(t, set.Matches(name, vp), "%s should not match width %d", name, tt.width)
		}
	}
}

func TestHeightConditions(t *testing.T) {
	t.Parallel()

	set := Default()
	assert.True(t, set.Matches(Short, Viewport{Height: 820}))
	assert.True(t, set.Matches(Tall, Viewport{Height: 820}), "both height conditions include 820")
	assert.False(t, set.Matches(Tall, Viewport{Height: 400}))
}

func TestConditionCounts(t *testing.T) {
	t.Parallel()

	var maxWidth, minWidth, height int
	for _, c := range Default().Conditions() {
		switch {
		case c.Query.MaxWidth > 0:
			maxWidth++
		case c.Query.MinWidth > 0:
			minWidth++
		case c.Query.MinHeight > 0 || c.Query.MaxHeight > 0:
			height++
		}
	}
	assert.Equal(t, 6, maxWidth)
	assert.Equal(t, 4, minWidth)
	assert.Equal(t, 2, height)
}

func TestActiveFollowsDeclarationOrder(t *testing.T) {
	t.Parallel()

	vp := FromTerminal(100, 40)
	require.Equal(t, 800, vp.Width)
	require.Equal(t, 640, vp.Height)

	active := Default().Active(vp)
	assert.Equal(t, []string{SM, MD, LG, XL, XXL, GtXS, Short, HoverNone, PointerCoarse}, active)
}

func TestWithReplacesInPlace(t *testing.T) {
	t.Parallel()

	set := Default().With(GtXS, Query{MinWidth: 700})

	q, ok := set.Lookup(GtXS)
	require.True(t, ok)
	assert.Equal(t, 700, q.MinWidth)
	assert.Equal(t, len(Default().Conditions()), len(set.Conditions()))

	orig, _ := Default().Lookup(GtXS)
	assert.Equal(t, 661, orig.MinWidth)

	assert.False(t, set.Matches("print", Viewport{}))
}
