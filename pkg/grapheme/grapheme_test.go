package grapheme

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestNewWidths(t *testing.T) {
	assert.Equal(t, 1, New('a').Width)
	assert.Equal(t, 2, New('あ').Width)
	// Combining mark has no width of its own.
	assert.Equal(t, 0, New('́').Width)
	// Control characters default to zero.
	assert.Equal(t, 0, New('\x00').Width)
}

func TestWidthSumsMembers(t *testing.T) {
	assert.Equal(t, 0, Graphemes(nil).Width())
	assert.Equal(t, 3, FromString("abc").Width())
	assert.Equal(t, 5, FromString("aあbc").Width())
}

func TestLongestCommonPrefix(t *testing.T) {
	assert.Equal(t, FromString("ab"), FromString("ab").LongestCommonPrefix(FromString("abc")))
	assert.Equal(t, FromString("ab"), FromString("abc").LongestCommonPrefix(FromString("ab")))
	assert.Empty(t, FromString("abc").LongestCommonPrefix(nil))
	assert.Empty(t, Graphemes(nil).LongestCommonPrefix(FromString("abc")))
	assert.Empty(t, Graphemes(nil).LongestCommonPrefix(nil))
}

func TestLongestCommonPrefixIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "hello", "日本語"} {
		g := FromString(s)
		assert.Equal(t, g.String(), g.LongestCommonPrefix(g).String())
	}
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "abc", Trim(3, FromString("abcde")).String())
	assert.Equal(t, "abcde", Trim(10, FromString("abcde")).String())
	// A wide character that would straddle the limit is dropped whole.
	assert.Equal(t, "a", Trim(2, FromString("aあb")).String())
	assert.Empty(t, Trim(0, FromString("abc")))
}

func TestTrimFullWidthIsNoop(t *testing.T) {
	for _, s := range []string{"", "abc", "aあbあ", "❯❯ hello"} {
		g := FromString(s)
		assert.Equal(t, g.String(), Trim(g.Width(), g).String())
	}
}

func TestMatrixify(t *testing.T) {
	rows := Matrixify(2, FromString("abcde"))
	var got []string
	for _, r := range rows {
		got = append(got, r.String())
	}
	assert.Equal(t, []string{"ab", "cd", "e"}, got)
}

func TestMatrixifyWideCharStartsNewRow(t *testing.T) {
	// "aあ" is 3 columns; あ does not fit after a in a 2-column row.
	rows := Matrixify(2, FromString("aあb"))
	assert.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].String())
	assert.Equal(t, "あb", rows[1].String())
}

func TestMatrixifyEmpty(t *testing.T) {
	assert.Empty(t, Matrixify(10, Graphemes(nil)))
	assert.Empty(t, Matrixify(0, FromString("abc")))
}

func TestStyledEquality(t *testing.T) {
	plain := lipgloss.NewStyle()
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	a := Styled("ab", plain)
	b := Styled("ab", plain)
	assert.True(t, a.Equal(b))

	// Same characters, different style: not equal.
	c := Styled("ab", red)
	assert.False(t, a.Equal(c))
	assert.Empty(t, a.LongestCommonPrefix(c))
}

func TestStyledRenderPlain(t *testing.T) {
	g := Styled("hello", lipgloss.NewStyle())
	assert.Equal(t, "hello", g.String())
	assert.Contains(t, g.Render(), "hello")
}
