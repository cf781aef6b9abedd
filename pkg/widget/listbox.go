package widget

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

// DefaultCursorGlyph prefixes the row the selection is on.
const DefaultCursorGlyph = "❯ "

// Listbox is a single-selection list. Rows that do not carry the cursor
// are indented by the glyph's width so item text stays aligned.
type Listbox struct {
	Items  []string
	Cursor int
	Glyph  string
	Lines  int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
}

// NewListbox builds a listbox over items with the cursor on the first row.
func NewListbox(items []string) *Listbox {
	return &Listbox{
		Items:       items,
		Glyph:       DefaultCursorGlyph,
		ActiveStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Selected returns the item under the cursor, or "" for an empty list.
func (l *Listbox) Selected() string {
	if len(l.Items) == 0 {
		return ""
	}
	return l.Items[l.Cursor]
}

func (l *Listbox) HandleEvent(ev event.Event) {
	switch {
	case ev.Is(event.KeyUp):
		if l.Cursor > 0 {
			l.Cursor--
		}
	case ev.Is(event.KeyDown):
		if l.Cursor < len(l.Items)-1 {
			l.Cursor++
		}
	}
}

func (l *Listbox) MakePane(width int) pane.Pane {
	pad := strings.Repeat(" ", grapheme.FromString(l.Glyph).Width())

	rows := make([]grapheme.StyledGraphemes, len(l.Items))
	for i, item := range l.Items {
		if i == l.Cursor {
			rows[i] = grapheme.Trim(width, grapheme.Styled(l.Glyph+item, l.ActiveStyle))
		} else {
			rows[i] = grapheme.Trim(width, grapheme.Styled(pad+item, l.InactiveStyle))
		}
	}
	return pane.New(rows, l.Cursor, l.Lines)
}

func (l *Listbox) Postrun() { l.Cursor = 0 }

func (l *Listbox) Clone() *Listbox {
	c := *l
	c.Items = slices.Clone(l.Items)
	return &c
}
