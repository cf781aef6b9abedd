package widget

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/pane"
)

// Checkbox is a multi-selection list: the cursor moves with the arrow keys
// and space toggles the mark on the cursor row.
type Checkbox struct {
	Items   []string
	Checked []bool
	Cursor  int
	Glyph   string
	Lines   int

	ActiveStyle   lipgloss.Style
	InactiveStyle lipgloss.Style
}

// NewCheckbox builds a checkbox list with nothing marked.
func NewCheckbox(items []string) *Checkbox {
	return &Checkbox{
		Items:       items,
		Checked:     make([]bool, len(items)),
		Glyph:       DefaultCursorGlyph,
		ActiveStyle: lipgloss.NewStyle().Bold(true),
	}
}

// Selected returns the marked items in list order.
func (c *Checkbox) Selected() []string {
	var out []string
	for i, item := range c.Items {
		if c.Checked[i] {
			out = append(out, item)
		}
	}
	return out
}

func (c *Checkbox) HandleEvent(ev event.Event) {
	switch {
	case ev.Is(event.KeyUp):
		if c.Cursor > 0 {
			c.Cursor--
		}
	case ev.Is(event.KeyDown):
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case ev.Is(event.KeyChar) && ev.Ch == ' ':
		if len(c.Items) > 0 {
			c.Checked[c.Cursor] = !c.Checked[c.Cursor]
		}
	}
}

func (c *Checkbox) MakePane(width int) pane.Pane {
	pad := strings.Repeat(" ", grapheme.FromString(c.Glyph).Width())

	rows := make([]grapheme.StyledGraphemes, len(c.Items))
	for i, item := range c.Items {
		mark := "[ ] "
		if c.Checked[i] {
			mark = "[x] "
		}
		if i == c.Cursor {
			rows[i] = grapheme.Trim(width, grapheme.Styled(c.Glyph+mark+item, c.ActiveStyle))
		} else {
			rows[i] = grapheme.Trim(width, grapheme.Styled(pad+mark+item, c.InactiveStyle))
		}
	}
	return pane.New(rows, c.Cursor, c.Lines)
}

func (c *Checkbox) Postrun() { c.Cursor = 0 }

func (c *Checkbox) Clone() *Checkbox {
	cp := *c
	cp.Items = slices.Clone(c.Items)
	cp.Checked = slices.Clone(c.Checked)
	return &cp
}
