package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Unified("a\nb\n", "a\nb\n", "golden", "rendered"))
}

func TestUnifiedSingleLineChange(t *testing.T) {
	t.Parallel()

	out := Unified("Welcome\n+---+\n| a |\n", "Welcome\n╭───╮\n| a |\n", "home.golden", "home")

	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(out, "--- home.golden\n+++ home\n"))
	assert.Contains(t, out, "@@ -1,3 +1,3 @@")
	assert.Contains(t, out, "-+---+\n")
	assert.Contains(t, out, "+╭───╮\n")
	assert.Contains(t, out, " Welcome\n")
	assert.Contains(t, out, " | a |\n")
}

func TestUnifiedAddedAndRemovedLines(t *testing.T) {
	t.Parallel()

	out := Unified("one\ntwo\n", "one\ntwo\nthree\n", "a", "b")
	assert.Contains(t, out, "+three\n")

	out = Unified("one\ntwo\n", "one\n", "a", "b")
	assert.Contains(t, out, "-two\n")
}

func TestUnifiedTruncatesHugeDiffs(t *testing.T) {
	t.Parallel()

	var expected, actual strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		expected.WriteString("old line\n")
		actual.WriteString("new line\n")
	}

	out := Unified(expected.String(), actual.String(), "a", "b")
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}

func TestChanged(t *testing.T) {
	t.Parallel()

	ins, del := Changed("a\nb\nc\n", "a\nB\nc\nd\n")
	assert.Equal(t, 2, ins)
	assert.Equal(t, 1, del)

	ins, del = Changed("same\n", "same\n")
	assert.Zero(t, ins)
	assert.Zero(t, del)
}
