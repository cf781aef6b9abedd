// Package widget implements the built-in components: static text, a line
// editor, list and checkbox selectors, and tree/JSON viewers. Each widget
// is pure state plus a MakePane renderer; none of them touch the terminal.
package widget

import (
	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

// Text displays static content, wrapped to the terminal width. An empty
// body produces an empty pane, which the driver skips, so Text doubles as
// an initially-invisible message slot (validation errors, hints).
type Text struct {
	Body  string
	Style lipgloss.Style
	Lines int
}

// NewText builds a static text widget.
func NewText(body string) *Text { return &Text{Body: body} }

func (t *Text) MakePane(width int) pane.Pane {
	rows := grapheme.Matrixify(width, grapheme.Styled(t.Body, t.Style))
	return pane.New(rows, 0, t.Lines)
}

func (t *Text) HandleEvent(event.Event) {}

func (t *Text) Postrun() {}

func (t *Text) Clone() *Text {
	c := *t
	return &c
}
