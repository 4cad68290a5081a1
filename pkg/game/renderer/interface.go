package renderer

import (
	"io"

	"bsplayout/pkg/game/generator"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleCorridor
	StyleObstacle
	StyleRock
	StyleLabel
	StyleValue
	StyleSubtle
	StyleWarning
)

// Renderer defines the interface for layout preview backends.
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, translations, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// RenderLayout writes a summary and map of the layout to w
	RenderLayout(w io.Writer, res *generator.Result) error
}
