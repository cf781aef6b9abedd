package widget

import (
	"slices"

	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/grapheme"
	"github.com/vito/prompt/pkg/history"
	"github.com/vito/prompt/pkg/pane"
	"github.com/vito/prompt/pkg/suggest"
	"github.com/vito/prompt/pkg/textbuffer"
)

// EditMode selects how typed characters land in the buffer.
type EditMode int

const (
	// EditInsert shifts existing text right.
	EditInsert EditMode = iota
	// EditOverwrite replaces the character under the cursor.
	EditOverwrite
)

// TextEditor is a single-line editor with an optional prompt prefix,
// secret masking, history browsing, and prefix completion. Long lines wrap
// across pane rows; the pane's focus row follows the cursor.
type TextEditor struct {
	Buffer  *textbuffer.Buffer
	History *history.History
	Suggest *suggest.Suggest

	Prefix string
	Mask   rune
	Mode   EditMode
	Lines  int

	PrefixStyle lipgloss.Style
	TextStyle   lipgloss.Style
	CursorStyle lipgloss.Style

	candidates   []string
	candidateIdx int
}

// NewTextEditor builds an editor with an empty buffer and the cursor cell
// shown in reverse video.
func NewTextEditor(prefix string) *TextEditor {
	return &TextEditor{
		Buffer:      textbuffer.New(),
		Prefix:      prefix,
		CursorStyle: lipgloss.NewStyle().Reverse(true),
	}
}

// Text returns the current content, sentinel excluded.
func (e *TextEditor) Text() string { return e.Buffer.ContentWithoutCursor() }

func (e *TextEditor) HandleEvent(ev event.Event) {
	// Tab walks the completion candidates; any other key ends the cycle.
	if ev.Is(event.KeyTab) && e.Suggest != nil {
		e.completeNext()
		return
	}
	e.candidates = nil

	switch {
	case ev.Is(event.KeyLeft):
		e.Buffer.StepLeft()
	case ev.Is(event.KeyRight):
		e.Buffer.StepRight()
	case ev.IsCtrl('a') || ev.Is(event.KeyHome):
		e.Buffer.MoveToHead()
	case ev.IsCtrl('e') || ev.Is(event.KeyEnd):
		e.Buffer.MoveToTail()
	case ev.Is(event.KeyBackspace):
		e.Buffer.Erase()
	case ev.IsCtrl('u'):
		e.Buffer.EraseAll()
	case ev.Is(event.KeyUp) && e.History != nil:
		if entry, ok := e.History.Prev(); ok {
			e.Buffer.Replace(grapheme.FromString(entry))
		}
	case ev.Is(event.KeyDown) && e.History != nil:
		// At the live line Down is a no-op, so an unsubmitted draft stays.
		if entry, ok := e.History.Next(); ok {
			e.Buffer.Replace(grapheme.FromString(entry))
		}
	default:
		if r, ok := ev.Printable(); ok {
			g := grapheme.New(r)
			if e.Mode == EditOverwrite {
				e.Buffer.Overwrite(g)
			} else {
				e.Buffer.Insert(g)
			}
		}
	}
}

func (e *TextEditor) completeNext() {
	if len(e.candidates) == 0 {
		e.candidates = e.Suggest.Search(e.Buffer.ContentWithoutCursor())
		e.candidateIdx = 0
	} else {
		e.candidateIdx = (e.candidateIdx + 1) % len(e.candidates)
	}
	if len(e.candidates) > 0 {
		e.Buffer.Replace(grapheme.FromString(e.candidates[e.candidateIdx]))
	}
}

func (e *TextEditor) MakePane(width int) pane.Pane {
	prefix := grapheme.Styled(e.Prefix, e.PrefixStyle)
	body := e.Buffer.Styled(e.TextStyle, e.CursorStyle, e.Mask)

	line := make(grapheme.StyledGraphemes, 0, len(prefix)+len(body))
	line = append(line, prefix...)
	line = append(line, body...)

	rows := grapheme.Matrixify(width, line)

	// The focus row is the wrapped row holding the cursor cell.
	cursorIdx := len(prefix) + e.Buffer.Position
	focus := 0
	seen := 0
	for i, row := range rows {
		if cursorIdx < seen+len(row) {
			focus = i
			break
		}
		seen += len(row)
	}

	return pane.New(rows, focus, e.Lines)
}

func (e *TextEditor) Postrun() {
	e.Buffer.MoveToHead()
	e.candidates = nil
}

func (e *TextEditor) Clone() *TextEditor {
	c := *e
	c.Buffer = e.Buffer.Clone()
	if e.History != nil {
		c.History = e.History.Clone()
	}
	c.candidates = slices.Clone(e.candidates)
	return &c
}
