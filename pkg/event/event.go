// Package event models discrete key-press events and decodes them from the
// raw byte sequences a terminal emits in raw mode.
package event

// Kind distinguishes press from release. Raw terminal input only ever
// produces presses; the field exists so callers can ignore anything else.
type Kind uint8

const (
	Press Kind = iota
	Release
)

// Mod is a set of modifier keys.
type Mod uint8

const (
	ModCtrl Mod = 1 << iota
	ModAlt
	ModShift
)

// Key identifies a key. Printable input uses KeyChar with the rune in Ch.
type Key uint8

const (
	// KeyNone marks input that decoded to nothing meaningful. The driver
	// and all widgets ignore it.
	KeyNone Key = iota
	KeyChar
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Event is a single decoded key event.
type Event struct {
	Key  Key
	Ch   rune // set when Key == KeyChar
	Mods Mod
	Kind Kind
}

// Is reports a plain (unmodified) press of k.
func (e Event) Is(k Key) bool {
	return e.Kind == Press && e.Key == k && e.Mods == 0
}

// IsMod reports a press of k with exactly the modifier set m.
func (e Event) IsMod(k Key, m Mod) bool {
	return e.Kind == Press && e.Key == k && e.Mods == m
}

// IsCtrl reports a press of Ctrl plus the given letter.
func (e Event) IsCtrl(r rune) bool {
	return e.Kind == Press && e.Key == KeyChar && e.Mods == ModCtrl && e.Ch == r
}

// Printable returns the rune for a press that should insert a character:
// KeyChar with no modifiers, or with Shift only.
func (e Event) Printable() (rune, bool) {
	if e.Kind != Press || e.Key != KeyChar {
		return 0, false
	}
	if e.Mods&^ModShift != 0 {
		return 0, false
	}
	return e.Ch, true
}
