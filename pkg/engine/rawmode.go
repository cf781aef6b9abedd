package engine

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// RawMode holds the termios state saved before entering raw mode so it can
// be restored on every exit path.
type RawMode struct {
	fd   int
	orig *unix.Termios
}

// EnableRawMode switches f (the session's stdin) into raw mode: no echo,
// no canonical line buffering, no signal generation, byte-at-a-time reads.
func EnableRawMode(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("get termios: %w", err)
	}

	raw := *orig
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}

	return &RawMode{fd: fd, orig: orig}, nil
}

// Restore puts the terminal back into its original mode.
func (r *RawMode) Restore() error {
	if err := unix.IoctlSetTermios(r.fd, ioctlWriteTermios, r.orig); err != nil {
		return fmt.Errorf("restore termios: %w", err)
	}
	return nil
}
