// Package terminal implements the diff renderer: it owns the previously
// painted frame, compares it against the panes requested for the next
// frame, and emits the minimal cursor moves, line clears, and writes
// needed to reconcile the screen. Frames render inline, starting from
// wherever the cursor was when the session began; appending a row while
// sitting on the terminal's bottom line scrolls everything up one and
// shifts the frame origin accordingly.
package terminal

import (
	"log/slog"

	pkgerrors "github.com/pkg/errors"

	"github.com/vito/prompt/pkg/engine"
	"github.com/vito/prompt/pkg/pane"
)

// ErrScreenTooSmall reports that the requested panes need more rows than
// the terminal has. The draw cycle fails but the session stays usable; a
// later draw (after a resize or a cap change) can succeed.
var ErrScreenTooSmall = pkgerrors.New("insufficient screen space to render")

// Session holds the authoritative notion of what is currently painted.
// One Session lives for the duration of an interactive prompt.
type Session struct {
	eng    *engine.Engine
	logger *slog.Logger

	prevRows  []string // rendered rows of the previous frame, in screen order
	prevWidth int

	originRow  int  // absolute screen row of frame row 0
	cursorRow  int  // frame row the cursor is on
	colDirty   bool // cursor is not at column 0
	maxPainted int  // frame rows painted so far
}

// StartSession begins a render session whose frame origin is the given
// absolute screen row, normally obtained from Engine.CursorPosition just
// after entering raw mode. The launch column is unknown (the caller may
// have printed without a trailing newline), so the first paint snaps to
// column 0.
func StartSession(eng *engine.Engine, startRow int) *Session {
	if startRow < 0 {
		startRow = 0
	}
	return &Session{eng: eng, originRow: startRow, colDirty: true}
}

// SetLogger enables per-draw reconciliation stats at Debug level. A nil
// logger disables logging.
func (s *Session) SetLogger(l *slog.Logger) { s.logger = l }

// Draw reconciles the screen with the given panes.
func (s *Session) Draw(panes []pane.Pane) error {
	width, height, err := s.eng.Size()
	if err != nil {
		return pkgerrors.Wrap(err, "draw")
	}

	newRows := renderRows(panes)
	if len(newRows) > height {
		return ErrScreenTooSmall
	}

	// A width change invalidates row-level equality wholesale, so every
	// row is rewritten in place.
	forceAll := s.prevWidth != 0 && s.prevWidth != width

	repainted := 0
	for i, row := range newRows {
		if !forceAll && i < len(s.prevRows) && s.prevRows[i] == row {
			continue
		}
		if err := s.paintRow(i, row); err != nil {
			return pkgerrors.Wrap(err, "draw")
		}
		repainted++
	}

	// Clear rows left over from a taller previous frame.
	for i := len(newRows); i < len(s.prevRows); i++ {
		if err := s.moveTo(i); err != nil {
			return pkgerrors.Wrap(err, "draw")
		}
		if err := s.eng.EraseCurrentLine(); err != nil {
			return pkgerrors.Wrap(err, "draw")
		}
	}

	// Park the cursor on the frame's last row.
	if len(newRows) > 0 {
		if err := s.moveTo(len(newRows) - 1); err != nil {
			return pkgerrors.Wrap(err, "draw")
		}
	}

	s.prevRows = newRows
	s.prevWidth = width

	if s.logger != nil {
		s.logger.Debug("draw",
			"rows", len(newRows),
			"repainted", repainted,
			"full", forceAll,
			"width", width,
		)
	}
	return nil
}

// Rows returns how many rows the current frame occupies.
func (s *Session) Rows() int { return len(s.prevRows) }

// Finish moves the cursor to a fresh line below the final frame so that
// whatever the caller prints next does not overwrite it.
func (s *Session) Finish() error {
	if len(s.prevRows) > 0 {
		if err := s.moveTo(len(s.prevRows) - 1); err != nil {
			return pkgerrors.Wrap(err, "finish")
		}
	}
	bottom, err := s.eng.IsBottom(s.originRow + s.cursorRow)
	if err != nil {
		return pkgerrors.Wrap(err, "finish")
	}
	if err := s.eng.MoveToNextLine(bottom); err != nil {
		return pkgerrors.Wrap(err, "finish")
	}
	return nil
}

// renderRows flattens the visible window of each pane into terminal
// strings, in stacking order.
func renderRows(panes []pane.Pane) []string {
	var rows []string
	for _, p := range panes {
		for _, row := range p.Visible() {
			rows = append(rows, row.Render())
		}
	}
	return rows
}

// paintRow clears frame row i and writes its new content.
func (s *Session) paintRow(i int, row string) error {
	if err := s.moveTo(i); err != nil {
		return err
	}
	if err := s.eng.EraseCurrentLine(); err != nil {
		return err
	}
	if row == "" {
		return nil
	}
	s.colDirty = true
	return s.eng.WriteString(row)
}

// moveTo positions the cursor at column 0 of frame row target, appending
// fresh lines (scrolling at the bottom edge) when the target has never
// been painted.
func (s *Session) moveTo(target int) error {
	// Extend the painted area line by line so the bottom-edge check runs
	// for each appended row.
	for s.maxPainted > 0 && s.cursorRow == s.maxPainted-1 && target >= s.maxPainted {
		bottom, err := s.eng.IsBottom(s.originRow + s.cursorRow)
		if err != nil {
			return err
		}
		if err := s.eng.MoveToNextLine(bottom); err != nil {
			return err
		}
		if bottom && s.originRow > 0 {
			s.originRow--
		}
		s.cursorRow++
		s.maxPainted++
		s.colDirty = false
	}
	if s.maxPainted == 0 {
		s.maxPainted = 1
	}
	if target >= s.maxPainted {
		s.maxPainted = target + 1
	}

	delta := target - s.cursorRow
	if delta > 0 {
		if err := s.eng.MoveDown(delta); err != nil {
			return err
		}
	} else if delta < 0 {
		if err := s.eng.MoveUp(-delta); err != nil {
			return err
		}
	}
	if delta == 0 && !s.colDirty {
		return nil
	}
	s.cursorRow = target
	s.colDirty = false
	return s.eng.CarriageReturn()
}
