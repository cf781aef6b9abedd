// Package textbuffer provides a cursor-addressable sequence of graphemes
// for line editing. The buffer always ends with a sentinel space grapheme
// that marks the writable position past the last real character, so the
// cursor can sit "after" the text and still have a cell to highlight.
//
// Every mutating operation returns the state before and after the change.
// The rendering layer consumes that pair to decide what actually changed
// instead of repainting the whole line.
package textbuffer

import (
	"charm.land/lipgloss/v2"

	"github.com/vito/prompt/pkg/grapheme"
)

// Buffer holds the edited graphemes and the cursor index. Position ranges
// over [0, len(Buf)-1]; the final index addresses the sentinel.
type Buffer struct {
	Buf      grapheme.Graphemes
	Position int
}

// Diff is the before/after pair produced by every mutation.
type Diff [2]Buffer

// New returns an empty buffer: just the sentinel, cursor on it.
func New() *Buffer {
	return &Buffer{Buf: grapheme.FromString(" ")}
}

// snapshot returns a deep copy of the current state.
func (b *Buffer) snapshot() Buffer {
	buf := make(grapheme.Graphemes, len(b.Buf))
	copy(buf, b.Buf)
	return Buffer{Buf: buf, Position: b.Position}
}

// Clone returns an independent deep copy.
func (b *Buffer) Clone() *Buffer {
	c := b.snapshot()
	return &c
}

func (b *Buffer) isHead() bool { return b.Position == 0 }
func (b *Buffer) isTail() bool { return b.Position == len(b.Buf)-1 }

// Text returns the buffer content with the trailing sentinel excluded.
func (b *Buffer) Text() grapheme.Graphemes {
	return b.Buf[:len(b.Buf)-1]
}

// ContentWithoutCursor returns the displayable string, sentinel excluded.
func (b *Buffer) ContentWithoutCursor() string {
	return b.Text().String()
}

// Insert places g at the cursor and advances the cursor past it.
func (b *Buffer) Insert(g grapheme.Grapheme) Diff {
	prev := b.snapshot()
	b.Buf = append(b.Buf[:b.Position:b.Position], append(grapheme.Graphemes{g}, b.Buf[b.Position:]...)...)
	b.stepRight()
	return Diff{prev, b.snapshot()}
}

// Overwrite replaces the grapheme under the cursor with g and advances.
// At the tail there is nothing to replace, so it degrades to Insert.
func (b *Buffer) Overwrite(g grapheme.Grapheme) Diff {
	prev := b.snapshot()
	if b.isTail() {
		b.Buf = append(b.Buf[:b.Position:b.Position], append(grapheme.Graphemes{g}, b.Buf[b.Position:]...)...)
	} else {
		b.Buf[b.Position] = g
	}
	b.stepRight()
	return Diff{prev, b.snapshot()}
}

// Erase deletes the grapheme immediately before the cursor. No-op at head.
func (b *Buffer) Erase() Diff {
	prev := b.snapshot()
	if !b.isHead() {
		b.Position--
		b.Buf = append(b.Buf[:b.Position:b.Position], b.Buf[b.Position+1:]...)
	}
	return Diff{prev, b.snapshot()}
}

// EraseAll resets to the empty buffer.
func (b *Buffer) EraseAll() Diff {
	prev := b.snapshot()
	b.Buf = grapheme.FromString(" ")
	b.Position = 0
	return Diff{prev, b.snapshot()}
}

// Replace discards the current content, adopts text plus a fresh sentinel,
// and moves the cursor to the tail.
func (b *Buffer) Replace(text grapheme.Graphemes) Diff {
	prev := b.snapshot()
	b.Buf = append(append(grapheme.Graphemes{}, text...), grapheme.New(' '))
	b.Position = len(b.Buf) - 1
	return Diff{prev, b.snapshot()}
}

// StepLeft moves the cursor one position toward the head. No-op at head.
func (b *Buffer) StepLeft() Diff {
	prev := b.snapshot()
	if !b.isHead() {
		b.Position--
	}
	return Diff{prev, b.snapshot()}
}

// StepRight moves the cursor one position toward the tail. No-op at tail.
func (b *Buffer) StepRight() Diff {
	prev := b.snapshot()
	b.stepRight()
	return Diff{prev, b.snapshot()}
}

func (b *Buffer) stepRight() {
	if !b.isTail() {
		b.Position++
	}
}

// MoveToHead jumps the cursor to position 0.
func (b *Buffer) MoveToHead() Diff {
	prev := b.snapshot()
	b.Position = 0
	return Diff{prev, b.snapshot()}
}

// MoveToTail jumps the cursor onto the sentinel.
func (b *Buffer) MoveToTail() Diff {
	prev := b.snapshot()
	b.Position = len(b.Buf) - 1
	return Diff{prev, b.snapshot()}
}

// WidthBeforeCursor returns the column offset of the cursor within the
// line, i.e. the total width of everything left of the cursor.
func (b *Buffer) WidthBeforeCursor() int {
	return b.Buf[:b.Position].Width()
}

// Styled renders the buffer as styled graphemes: style for ordinary
// characters, cursorStyle for the grapheme under the cursor (sentinel
// included). If mask is non-zero every content grapheme is replaced by the
// mask character, hiding secret input while preserving cursor movement.
func (b *Buffer) Styled(style, cursorStyle lipgloss.Style, mask rune) grapheme.StyledGraphemes {
	out := make(grapheme.StyledGraphemes, 0, len(b.Buf))
	for i, g := range b.Buf {
		if mask != 0 && i < len(b.Buf)-1 {
			g = grapheme.New(mask)
		}
		st := style
		if i == b.Position {
			st = cursorStyle
		}
		out = append(out, grapheme.StyledGrapheme{Grapheme: g, Style: st})
	}
	return out
}
