package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal attached to f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	if f == nil {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive returns true if f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Fits returns true if a map of the given size can be printed to f without wrapping.
// Non-terminal outputs always fit.
func Fits(f *os.File, cols, rows int) bool {
	if !IsInteractive(f) {
		return true
	}
	width, _ := GetSize(f)
	return cols <= width
}
