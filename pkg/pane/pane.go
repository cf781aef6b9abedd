// Package pane defines the frame value object every widget renders into: a
// stack of styled rows, a focus row, and an optional cap on how many rows
// are eligible for display at once. Panes are rebuilt from widget state on
// every redraw and own no terminal resources.
package pane

import "github.com/vito/prompt/pkg/grapheme"

// Pane is one widget's rendered frame.
type Pane struct {
	// Rows are the display lines, one styled sequence per line.
	Rows []grapheme.StyledGraphemes
	// Focus is the index of the row the user is "on" (selection row for
	// lists, the row containing the cursor for editors).
	Focus int
	// Cap bounds how many rows may be displayed. Zero means no cap.
	Cap int
}

// New builds a pane, clamping focus into the valid row range.
func New(rows []grapheme.StyledGraphemes, focus, capLines int) Pane {
	if n := len(rows); n > 0 {
		if focus < 0 {
			focus = 0
		}
		if focus > n-1 {
			focus = n - 1
		}
	} else {
		focus = 0
	}
	return Pane{Rows: rows, Focus: focus, Cap: capLines}
}

// IsEmpty reports whether the pane has no rows to show.
func (p Pane) IsEmpty() bool { return len(p.Rows) == 0 }

// Window returns the half-open row range [start, end) eligible for display.
// The window is the size-cap range whose last row is the focus row, clamped
// at the sequence boundaries: start = max(0, focus-cap+1). Stepping the
// focus therefore never slides the viewport by more than one row.
func (p Pane) Window() (start, end int) {
	n := len(p.Rows)
	if n == 0 {
		return 0, 0
	}
	lines := n
	if p.Cap > 0 && p.Cap < lines {
		lines = p.Cap
	}
	start = p.Focus - lines + 1
	if start < 0 {
		start = 0
	}
	if start+lines > n {
		start = n - lines
	}
	return start, start + lines
}

// Visible returns the rows inside the display window.
func (p Pane) Visible() []grapheme.StyledGraphemes {
	start, end := p.Window()
	return p.Rows[start:end]
}
