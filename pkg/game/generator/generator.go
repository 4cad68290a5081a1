// Package generator builds deterministic BSP dungeon layouts: a split tree,
// one room per leaf, L-shaped corridors between sibling subtrees, obstacles
// inside rooms, and the wall segments that bound the result.
package generator

// LayoutGenerator is an interface for layout generation algorithms
type LayoutGenerator interface {
	Generate(cfg Config) (*Result, error)
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{}
)

// DefaultGenerator is the default layout generator
var DefaultGenerator LayoutGenerator = BSP

// Generate builds a layout with the default generator
func Generate(cfg Config) (*Result, error) {
	return DefaultGenerator.Generate(cfg)
}
