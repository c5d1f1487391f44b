// Package terminal provides styled log output and TTY detection.
package terminal

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI color codes.
const (
	Reset  = "\033[0m"
	Dim    = "\033[2m"
	Cyan   = "\033[36m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Red    = "\033[31m"
)

// colorMu protects access to colorsEnabled.
var colorMu sync.RWMutex

// colorsEnabled tracks whether color output is enabled globally.
var colorsEnabled = true

// ColorsEnabled returns whether colors are currently enabled.
func ColorsEnabled() bool {
	colorMu.RLock()
	defer colorMu.RUnlock()
	return colorsEnabled
}

// SetColorsEnabled sets the color output state.
func SetColorsEnabled(enabled bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorsEnabled = enabled
}

// ConfigureColors enables colors only when stderr is a terminal and NO_COLOR
// is unset.
func ConfigureColors() {
	_, noColor := os.LookupEnv("NO_COLOR")
	SetColorsEnabled(!noColor && IsStderrTTY())
}

// Color returns the color code if colors are enabled, otherwise empty string.
func Color(c string) string {
	if ColorsEnabled() {
		return c
	}
	return ""
}

func isTTY(fd int) bool {
	return term.IsTerminal(fd)
}

// IsStderrTTY returns true if stderr is a TTY.
func IsStderrTTY() bool {
	return isTTY(int(os.Stderr.Fd()))
}
