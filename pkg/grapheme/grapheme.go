// Package grapheme models terminal text as display characters paired with
// their column widths. Widths matter because emoji and east-asian characters
// occupy two columns while combining marks occupy none; every layer above
// (text buffers, panes, the diff renderer) positions the cursor in columns,
// not runes.
package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Grapheme is a single display character and its terminal column width.
// Width is computed once at construction and never changes.
type Grapheme struct {
	Ch    rune
	Width int
}

// New builds a Grapheme from a rune. Runes without a known display width
// (combining marks, zero-width joiners, control characters) get width 0.
func New(r rune) Grapheme {
	return Grapheme{Ch: r, Width: runewidth.RuneWidth(r)}
}

func (g Grapheme) cellWidth() int { return g.Width }

// Graphemes is an ordered sequence of Grapheme in display order.
type Graphemes []Grapheme

// FromString converts s into a Graphemes sequence, one element per rune.
func FromString(s string) Graphemes {
	g := make(Graphemes, 0, len(s))
	for _, r := range s {
		g = append(g, New(r))
	}
	return g
}

// String returns the plain text of the sequence.
func (g Graphemes) String() string {
	var b strings.Builder
	for _, gr := range g {
		b.WriteRune(gr.Ch)
	}
	return b.String()
}

// Width returns the total column width of the sequence.
func (g Graphemes) Width() int {
	w := 0
	for _, gr := range g {
		w += gr.Width
	}
	return w
}

// LongestCommonPrefix returns the longest leading run of graphemes equal in
// both sequences. Equality is element-wise (character and width); either
// input being empty yields an empty result.
func (g Graphemes) LongestCommonPrefix(o Graphemes) Graphemes {
	n := min(len(g), len(o))
	var out Graphemes
	for i := 0; i < n; i++ {
		if g[i] != o[i] {
			break
		}
		out = append(out, g[i])
	}
	return out
}

// cell is any element that knows its column width. It lets Trim and
// Matrixify operate on plain and styled sequences alike.
type cell interface {
	cellWidth() int
}

// Trim greedily keeps leading elements while their cumulative width stays
// within maxWidth. The first element that would exceed maxWidth is dropped
// along with everything after it; a wide character is never split.
func Trim[S ~[]E, E cell](maxWidth int, seq S) S {
	total := 0
	for i, g := range seq {
		total += g.cellWidth()
		if total > maxWidth {
			return seq[:i:i]
		}
	}
	return seq
}

// Matrixify reflows seq into rows of at most maxWidth columns. A new row
// starts when the next element would exceed the remaining width, so a wide
// character that does not fit moves to the next row whole. Elements wider
// than maxWidth on their own can never be placed and are skipped.
func Matrixify[S ~[]E, E cell](maxWidth int, seq S) []S {
	if maxWidth <= 0 {
		return nil
	}
	var rows []S
	var row S
	used := 0
	for _, g := range seq {
		w := g.cellWidth()
		if w > maxWidth {
			continue
		}
		if used+w > maxWidth {
			rows = append(rows, row)
			row = nil
			used = 0
		}
		row = append(row, g)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}
