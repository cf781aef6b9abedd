package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CursorPosition reports the cursor's zero-based screen row and column by
// writing a DSR query and parsing the CPR response from in. The terminal
// must already be in raw mode, otherwise the response is echoed and line
// buffered.
func (e *Engine) CursorPosition(in io.Reader) (row, col int, err error) {
	if err := e.write("\x1b[6n"); err != nil {
		return 0, 0, err
	}

	// Response: ESC [ row ; col R, 1-based.
	var resp strings.Builder
	b := make([]byte, 1)
	for {
		if _, err := in.Read(b); err != nil {
			return 0, 0, fmt.Errorf("read cursor position: %w", err)
		}
		if b[0] == 'R' {
			break
		}
		resp.WriteByte(b[0])
		if resp.Len() > 32 {
			return 0, 0, fmt.Errorf("malformed cursor position response %q", resp.String())
		}
	}

	body := resp.String()
	if i := strings.IndexByte(body, '['); i >= 0 {
		body = body[i+1:]
	}
	rowStr, colStr, ok := strings.Cut(body, ";")
	if !ok {
		return 0, 0, fmt.Errorf("malformed cursor position response %q", resp.String())
	}
	r, err := strconv.Atoi(rowStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cursor position response %q", resp.String())
	}
	c, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cursor position response %q", resp.String())
	}
	return r - 1, c - 1, nil
}
