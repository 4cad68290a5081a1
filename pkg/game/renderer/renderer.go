// Package renderer defines the layout preview backends and the active one.
package renderer

import (
	"io"

	"bsplayout/pkg/game/generator"
)

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer and initializes it
func SetRenderer(r Renderer) {
	Current = r
	if r != nil {
		r.Init()
	}
}

// RenderLayout renders res with the current renderer. Does nothing without one.
func RenderLayout(w io.Writer, res *generator.Result) error {
	if Current == nil {
		return nil
	}
	return Current.RenderLayout(w, res)
}
