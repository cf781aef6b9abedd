package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vito/prompt/pkg/event"
	"github.com/vito/prompt/pkg/history"
	"github.com/vito/prompt/pkg/suggest"
)

func ch(r rune) event.Event { return event.Event{Key: event.KeyChar, Ch: r} }

func key(k event.Key) event.Event { return event.Event{Key: k} }

func ctrl(r rune) event.Event {
	return event.Event{Key: event.KeyChar, Ch: r, Mods: event.ModCtrl}
}

func typeString(e *TextEditor, s string) {
	for _, r := range s {
		e.HandleEvent(ch(r))
	}
}

func TestEditorTyping(t *testing.T) {
	e := NewTextEditor("> ")
	typeString(e, "hello")
	assert.Equal(t, "hello", e.Text())
}

func TestEditorBackspace(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "abc")
	e.HandleEvent(key(event.KeyBackspace))
	assert.Equal(t, "ab", e.Text())
}

func TestEditorKillLine(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "abc")
	e.HandleEvent(ctrl('u'))
	assert.Empty(t, e.Text())
}

func TestEditorCursorMovement(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "ac")
	e.HandleEvent(key(event.KeyLeft))
	e.HandleEvent(ch('b'))
	assert.Equal(t, "abc", e.Text())

	e.HandleEvent(ctrl('a'))
	e.HandleEvent(ch('x'))
	assert.Equal(t, "xabc", e.Text())

	e.HandleEvent(ctrl('e'))
	e.HandleEvent(ch('y'))
	assert.Equal(t, "xabcy", e.Text())
}

func TestEditorOverwriteMode(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "abc")
	e.Mode = EditOverwrite
	e.HandleEvent(ctrl('a'))
	typeString(e, "XY")
	assert.Equal(t, "XYc", e.Text())
}

func TestEditorHistoryBrowsing(t *testing.T) {
	e := NewTextEditor("")
	e.History = history.New()
	e.History.Insert("older")
	e.History.Insert("newer")

	e.HandleEvent(key(event.KeyUp))
	assert.Equal(t, "newer", e.Text())

	e.HandleEvent(key(event.KeyUp))
	assert.Equal(t, "older", e.Text())

	e.HandleEvent(key(event.KeyDown))
	assert.Equal(t, "newer", e.Text())

	// Walking past the newest entry restores an empty live line.
	e.HandleEvent(key(event.KeyDown))
	assert.Empty(t, e.Text())
}

func TestEditorHistoryDownKeepsDraft(t *testing.T) {
	e := NewTextEditor("")
	e.History = history.New()
	e.History.Insert("older")

	// Down while already at the live line must not wipe the typed draft.
	typeString(e, "draft")
	e.HandleEvent(key(event.KeyDown))
	assert.Equal(t, "draft", e.Text())
}

func TestEditorHistoryUpAtOldestKeepsEntry(t *testing.T) {
	e := NewTextEditor("")
	e.History = history.New()
	e.History.Insert("only")

	e.HandleEvent(key(event.KeyUp))
	e.HandleEvent(key(event.KeyUp))
	assert.Equal(t, "only", e.Text())
}

func TestEditorTabCompletion(t *testing.T) {
	e := NewTextEditor("")
	e.Suggest = suggest.New("git", "gitignore", "grep")
	typeString(e, "gi")

	e.HandleEvent(key(event.KeyTab))
	assert.Equal(t, "git", e.Text())

	e.HandleEvent(key(event.KeyTab))
	assert.Equal(t, "gitignore", e.Text())

	// The cycle wraps.
	e.HandleEvent(key(event.KeyTab))
	assert.Equal(t, "git", e.Text())
}

func TestEditorTypingEndsCompletionCycle(t *testing.T) {
	e := NewTextEditor("")
	e.Suggest = suggest.New("git", "gitignore")
	typeString(e, "gi")
	e.HandleEvent(key(event.KeyTab))
	typeString(e, "x")

	// A fresh Tab searches from the new content instead of cycling.
	e.HandleEvent(key(event.KeyTab))
	assert.Equal(t, "gitx", e.Text())
}

func TestEditorPaneWrapsAndFollowsCursor(t *testing.T) {
	e := NewTextEditor(">> ")
	typeString(e, "abcdef")

	p := e.MakePane(4)
	assert.Len(t, p.Rows, 3)
	assert.Equal(t, ">> a", p.Rows[0].String())
	assert.Equal(t, "bcde", p.Rows[1].String())
	// Cursor sits on the sentinel in the last wrapped row.
	assert.Equal(t, 2, p.Focus)
}

func TestEditorMask(t *testing.T) {
	e := NewTextEditor("")
	e.Mask = '*'
	typeString(e, "secret")

	p := e.MakePane(80)
	assert.Equal(t, "****** ", p.Rows[0].String())
	assert.Equal(t, "secret", e.Text())
}

func TestEditorCloneIsIndependent(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "abc")

	c := e.Clone()
	typeString(c, "def")

	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, "abcdef", c.Text())
}

func TestEditorPostrun(t *testing.T) {
	e := NewTextEditor("")
	typeString(e, "abc")
	e.Postrun()
	assert.Equal(t, 0, e.Buffer.Position)
	assert.Equal(t, "abc", e.Text())
}
