package limelight

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set debug flag so that operations
// without a Spotlight pointer can check it cheaply.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, operations on a
// destroyed Spotlight panic with a descriptive message and verbose
// diagnostics are printed to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// warnf prints a warning to stderr. Warnings report caller mistakes the
// engine tolerates (ambiguous or empty steps) rather than hard errors.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[limelight] warning: "+format+"\n", args...)
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[limelight] "+format+"\n", args...)
}

// debugCheckDestroyed panics with a descriptive message when a destroyed
// spotlight is used. Only called when debug mode is on; in release mode the
// behavior of a destroyed spotlight is undefined.
func debugCheckDestroyed(s *Spotlight, op string) {
	if s.destroyed {
		panic(fmt.Sprintf("limelight debug: %s on destroyed spotlight", op))
	}
}
