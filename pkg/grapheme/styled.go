package grapheme

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StyledGrapheme is a Grapheme tagged with a display style.
type StyledGrapheme struct {
	Grapheme
	Style lipgloss.Style
}

// NewStyled builds a styled grapheme from a rune.
func NewStyled(r rune, style lipgloss.Style) StyledGrapheme {
	return StyledGrapheme{Grapheme: New(r), Style: style}
}

// Equal reports whether both character and style match. Styles are compared
// by their rendered output, so two styles that paint identically are equal
// even when built through different setter chains.
func (g StyledGrapheme) Equal(o StyledGrapheme) bool {
	if g.Ch != o.Ch {
		return false
	}
	return g.Style.Render(string(g.Ch)) == o.Style.Render(string(o.Ch))
}

// StyledGraphemes is an ordered sequence of styled graphemes; one instance
// is the unit of a rendered pane row.
type StyledGraphemes []StyledGrapheme

// Styled converts s into a styled sequence with one uniform style.
func Styled(s string, style lipgloss.Style) StyledGraphemes {
	g := make(StyledGraphemes, 0, len(s))
	for _, r := range s {
		g = append(g, NewStyled(r, style))
	}
	return g
}

// String returns the plain text of the sequence, styles excluded.
func (g StyledGraphemes) String() string {
	var b strings.Builder
	for _, gr := range g {
		b.WriteRune(gr.Ch)
	}
	return b.String()
}

// Width returns the total column width of the sequence.
func (g StyledGraphemes) Width() int {
	w := 0
	for _, gr := range g {
		w += gr.Width
	}
	return w
}

// Render produces the terminal string for the sequence, batching runs of
// graphemes whose styles render identically so SGR sequences are not
// repeated per character.
func (g StyledGraphemes) Render() string {
	var b strings.Builder
	i := 0
	for i < len(g) {
		j := i + 1
		for j < len(g) && sameStyle(g[i].Style, g[j].Style) {
			j++
		}
		var run strings.Builder
		for _, gr := range g[i:j] {
			run.WriteRune(gr.Ch)
		}
		b.WriteString(g[i].Style.Render(run.String()))
		i = j
	}
	return b.String()
}

// Equal reports element-wise equality of character and style.
func (g StyledGraphemes) Equal(o StyledGraphemes) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if !g[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// LongestCommonPrefix returns the longest leading run equal in both
// sequences; character and style must both match.
func (g StyledGraphemes) LongestCommonPrefix(o StyledGraphemes) StyledGraphemes {
	n := min(len(g), len(o))
	var out StyledGraphemes
	for i := 0; i < n; i++ {
		if !g[i].Equal(o[i]) {
			break
		}
		out = append(out, g[i])
	}
	return out
}

func sameStyle(a, b lipgloss.Style) bool {
	const probe = "x"
	return a.Render(probe) == b.Render(probe)
}
