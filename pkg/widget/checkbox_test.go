package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vito/prompt/pkg/event"
)

func TestCheckboxToggle(t *testing.T) {
	c := NewCheckbox([]string{"a", "b", "c"})
	c.HandleEvent(ch(' '))
	c.HandleEvent(key(event.KeyDown))
	c.HandleEvent(key(event.KeyDown))
	c.HandleEvent(ch(' '))

	assert.Equal(t, []string{"a", "c"}, c.Selected())

	// Toggling again unmarks.
	c.HandleEvent(ch(' '))
	assert.Equal(t, []string{"a"}, c.Selected())
}

func TestCheckboxPaneMarks(t *testing.T) {
	c := NewCheckbox([]string{"one", "two"})
	c.HandleEvent(ch(' '))
	c.HandleEvent(key(event.KeyDown))

	p := c.MakePane(80)
	assert.Equal(t, "  [x] one", p.Rows[0].String())
	assert.Equal(t, "❯ [ ] two", p.Rows[1].String())
	assert.Equal(t, 1, p.Focus)
}

func TestCheckboxCloneIsIndependent(t *testing.T) {
	c := NewCheckbox([]string{"a"})
	cp := c.Clone()
	cp.HandleEvent(ch(' '))

	assert.Empty(t, c.Selected())
	assert.Equal(t, []string{"a"}, cp.Selected())
}
