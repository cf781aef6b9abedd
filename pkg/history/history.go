// Package history keeps the lines previously submitted to an editor and a
// browse position for walking them with the arrow keys.
package history

import "slices"

// History is an ordered, duplicate-free list of submitted entries. The
// browse position one past the last entry represents the live (unsubmitted)
// line.
type History struct {
	entries []string
	pos     int
}

func New() *History { return &History{} }

// Insert appends entry unless it is already present, and resets the browse
// position to the live line.
func (h *History) Insert(entry string) {
	if !slices.Contains(h.entries, entry) {
		h.entries = append(h.entries, entry)
	}
	h.pos = len(h.entries)
}

// Prev steps toward the oldest entry. The second return reports whether
// the position moved; false means there is nothing older.
func (h *History) Prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	entry, _ := h.Get()
	return entry, true
}

// Next steps toward the live line. Stepping off the newest entry returns
// an empty string, restoring the live line; at the live line already the
// position stays put and the second return is false.
func (h *History) Next() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	entry, _ := h.Get()
	return entry, true
}

// Get returns the entry at the browse position, or "" at the live line.
func (h *History) Get() (string, bool) {
	if h.pos < len(h.entries) {
		return h.entries[h.pos], true
	}
	return "", false
}

// Len reports how many entries are stored.
func (h *History) Len() int { return len(h.entries) }

// Clone deep-copies the history, browse position included.
func (h *History) Clone() *History {
	return &History{entries: slices.Clone(h.entries), pos: h.pos}
}
