// Package engine provides the ANSI-level primitives the diff renderer is
// built on: clear, write, cursor movement, scrolling, and live terminal
// size queries. Nothing here knows about panes or frames; it is the thin
// seam between the renderer and the terminal, and the seam tests hook into.
package engine

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Engine writes escape sequences to a terminal. The size function is
// injectable so tests can simulate fixed or changing dimensions.
type Engine struct {
	out  io.Writer
	size func() (cols, rows int, err error)
}

// New builds an Engine over out. When out is a real terminal the size is
// read from the kernel on every call; otherwise a conventional 80x24 is
// reported.
func New(out io.Writer) *Engine {
	e := &Engine{out: out}
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		e.size = func() (int, int, error) {
			ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
			if err != nil {
				return 0, 0, fmt.Errorf("query terminal size: %w", err)
			}
			return int(ws.Col), int(ws.Row), nil
		}
	} else {
		e.size = func() (int, int, error) { return 80, 24, nil }
	}
	return e
}

// NewWithSize builds an Engine with an explicit size function.
func NewWithSize(out io.Writer, size func() (int, int, error)) *Engine {
	return &Engine{out: out, size: size}
}

// Size returns the current terminal dimensions. It is never cached; a
// resize between redraws is picked up on the next call.
func (e *Engine) Size() (cols, rows int, err error) {
	return e.size()
}

// IsBottom reports whether the given screen row is the terminal's last.
func (e *Engine) IsBottom(row int) (bool, error) {
	_, rows, err := e.size()
	if err != nil {
		return false, err
	}
	return row+1 >= rows, nil
}

func (e *Engine) write(s string) error {
	if _, err := io.WriteString(e.out, s); err != nil {
		return fmt.Errorf("write terminal: %w", err)
	}
	return nil
}

// WriteString sends s to the terminal verbatim.
func (e *Engine) WriteString(s string) error { return e.write(s) }

// Clear erases the whole screen and homes the cursor.
func (e *Engine) Clear() error { return e.write("\x1b[2J\x1b[H") }

// EraseCurrentLine clears the line the cursor is on without moving it.
func (e *Engine) EraseCurrentLine() error { return e.write("\x1b[2K") }

// CarriageReturn moves the cursor to column 0 of the current row.
func (e *Engine) CarriageReturn() error { return e.write("\r") }

// MoveUp moves the cursor up n rows (no-op for n <= 0).
func (e *Engine) MoveUp(n int) error {
	if n <= 0 {
		return nil
	}
	return e.write(fmt.Sprintf("\x1b[%dA", n))
}

// MoveDown moves the cursor down n rows (no-op for n <= 0).
func (e *Engine) MoveDown(n int) error {
	if n <= 0 {
		return nil
	}
	return e.write(fmt.Sprintf("\x1b[%dB", n))
}

// MoveToNextLine moves to column 0 of the next row. When scrollUp is set
// the content is scrolled one line first, so a cursor already on the
// terminal's bottom row does not push rendered lines off the top.
func (e *Engine) MoveToNextLine(scrollUp bool) error {
	if scrollUp {
		if err := e.write("\x1b[1S"); err != nil {
			return err
		}
	}
	return e.write("\x1b[1E")
}

// ScrollUp scrolls the terminal content up n lines.
func (e *Engine) ScrollUp(n int) error {
	if n <= 0 {
		return nil
	}
	return e.write(fmt.Sprintf("\x1b[%dS", n))
}

// HideCursor hides the hardware cursor.
func (e *Engine) HideCursor() error { return e.write("\x1b[?25l") }

// ShowCursor shows the hardware cursor.
func (e *Engine) ShowCursor() error { return e.write("\x1b[?25h") }
