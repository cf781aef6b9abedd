package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertDeduplicates(t *testing.T) {
	h := New()
	h.Insert("one")
	h.Insert("two")
	h.Insert("one")
	assert.Equal(t, 2, h.Len())
}

func TestPrevWalksBackward(t *testing.T) {
	h := New()
	h.Insert("first")
	h.Insert("second")

	got, ok := h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "second", got)

	got, ok = h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "first", got)

	// Already at the oldest entry: the position stays put.
	got, ok = h.Prev()
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestNextRestoresLiveLine(t *testing.T) {
	h := New()
	h.Insert("first")
	h.Prev()

	got, ok := h.Next()
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestNextAtLiveLineIsNoop(t *testing.T) {
	h := New()
	h.Insert("first")

	_, ok := h.Next()
	assert.False(t, ok)
}

func TestInsertResetsPosition(t *testing.T) {
	h := New()
	h.Insert("first")
	h.Prev()

	h.Insert("second")
	got, ok := h.Prev()
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestCloneIsIndependent(t *testing.T) {
	h := New()
	h.Insert("one")

	c := h.Clone()
	c.Insert("two")
	c.Prev()

	assert.Equal(t, 1, h.Len())
	_, ok := h.Get()
	assert.False(t, ok)
}
