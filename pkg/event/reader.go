package event

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// Escape sequences recognized by the decoder, longest first so prefix
// matching picks the most specific sequence.
var sequences = []struct {
	seq string
	ev  Event
}{
	{"\x1b[1;5D", Event{Key: KeyLeft, Mods: ModCtrl}},
	{"\x1b[1;5C", Event{Key: KeyRight, Mods: ModCtrl}},
	{"\x1b[1;3D", Event{Key: KeyLeft, Mods: ModAlt}},
	{"\x1b[1;3C", Event{Key: KeyRight, Mods: ModAlt}},
	{"\x1b[1~", Event{Key: KeyHome}},
	{"\x1b[3~", Event{Key: KeyDelete}},
	{"\x1b[4~", Event{Key: KeyEnd}},
	{"\x1b[A", Event{Key: KeyUp}},
	{"\x1b[B", Event{Key: KeyDown}},
	{"\x1b[C", Event{Key: KeyRight}},
	{"\x1b[D", Event{Key: KeyLeft}},
	{"\x1b[H", Event{Key: KeyHome}},
	{"\x1b[F", Event{Key: KeyEnd}},
	{"\x1b[Z", Event{Key: KeyTab, Mods: ModShift}},
}

// Reader decodes key events from a raw-mode terminal byte stream. Next
// blocks on the underlying reader until a full event is available; it is
// the prompt loop's only suspension point.
type Reader struct {
	r       io.Reader
	pending []byte
}

// NewReader wraps r, typically the process's stdin in raw mode.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next decoded event.
func (r *Reader) Next() (Event, error) {
	for {
		if len(r.pending) == 0 {
			if err := r.fill(); err != nil {
				return Event{}, err
			}
		}
		ev, n, complete := decode(r.pending)
		if !complete {
			// A split escape sequence; wait for the rest.
			if err := r.fill(); err != nil {
				return Event{}, err
			}
			continue
		}
		r.pending = r.pending[n:]
		return ev, nil
	}
}

func (r *Reader) fill() error {
	buf := make([]byte, 256)
	n, err := r.r.Read(buf)
	if n > 0 {
		r.pending = append(r.pending, buf[:n]...)
		return nil
	}
	if err == nil {
		err = io.EOF
	}
	return fmt.Errorf("read input: %w", err)
}

// decode parses one event from the front of p. It returns the event, the
// number of bytes consumed, and whether the input held a complete event.
func decode(p []byte) (Event, int, bool) {
	if len(p) == 0 {
		return Event{}, 0, false
	}

	if p[0] == 0x1b {
		return decodeEscape(p)
	}

	b := p[0]
	switch {
	case b == '\r':
		return Event{Key: KeyEnter}, 1, true
	case b == '\t':
		return Event{Key: KeyTab}, 1, true
	case b == 0x7f || b == 0x08:
		return Event{Key: KeyBackspace}, 1, true
	case b < 0x20:
		// Ctrl+letter: 0x01..0x1a map onto 'a'..'z'.
		if b >= 0x01 && b <= 0x1a {
			return Event{Key: KeyChar, Ch: rune('a' + b - 1), Mods: ModCtrl}, 1, true
		}
		return Event{Key: KeyNone}, 1, true
	}

	ch, size := utf8.DecodeRune(p)
	if ch == utf8.RuneError && size == 1 {
		if !utf8.FullRune(p) {
			return Event{}, 0, false
		}
		return Event{Key: KeyNone}, 1, true
	}
	var mods Mod
	if unicode.IsUpper(ch) {
		mods = ModShift
	}
	return Event{Key: KeyChar, Ch: ch, Mods: mods}, size, true
}

func decodeEscape(p []byte) (Event, int, bool) {
	if len(p) == 1 {
		// Could be a lone Escape press or the start of a sequence split
		// across reads; a lone escape is by far the common case once the
		// buffer has drained.
		return Event{Key: KeyEscape}, 1, true
	}

	for _, s := range sequences {
		if len(p) >= len(s.seq) && string(p[:len(s.seq)]) == s.seq {
			return s.ev, len(s.seq), true
		}
	}

	if p[1] == '[' {
		// Unrecognized CSI: consume through the final byte and ignore.
		for i := 2; i < len(p); i++ {
			if p[i] >= 0x40 && p[i] <= 0x7e {
				return Event{Key: KeyNone}, i + 1, true
			}
		}
		return Event{}, 0, false
	}

	// ESC + printable is Alt+char.
	ch, size := utf8.DecodeRune(p[1:])
	if ch == utf8.RuneError {
		return Event{Key: KeyEscape}, 1, true
	}
	return Event{Key: KeyChar, Ch: ch, Mods: ModAlt}, 1 + size, true
}
