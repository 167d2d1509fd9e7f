//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package platform

import "io"

// probeTTY defers to tcell, which reports console availability itself on these platforms
func probeTTY() error {
	return nil
}

// EmergencyReset is a no-op where the console restores itself on process exit
func EmergencyReset(w io.Writer) {}
