//go:build linux || darwin || freebsd || netbsd || openbsd

package platform

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Sequences restoring a sane terminal after an abnormal exit
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// probeTTY fails when stdout is not attached to a terminal
func probeTTY() error {
	fd := int(os.Stdout.Fd())
	if _, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err != nil {
		return fmt.Errorf("stdout is not a terminal: %w", err)
	}
	if ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil && (ws.Col == 0 || ws.Row == 0) {
		return fmt.Errorf("terminal reports %dx%d cells", ws.Col, ws.Row)
	}
	return nil
}

// EmergencyReset restores the terminal when the normal Destroy path cannot run (panic)
// Best-effort; errors are ignored
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}

// resetTerminalMode re-enables cooked mode through /dev/tty so it works with redirected stdin
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
}
