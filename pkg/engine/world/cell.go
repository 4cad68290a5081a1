// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellKind is what occupies a tile
type CellKind int

const (
	Rock     CellKind = iota // Solid, outside any room or corridor
	Floor                    // Room floor
	Corridor                 // Corridor floor outside rooms
	Obstacle                 // Solid block inside a room
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Rock:
		return "Rock"
	case Floor:
		return "Floor"
	case Corridor:
		return "Corridor"
	case Obstacle:
		return "Obstacle"
	default:
		return "Unknown"
	}
}

// Walkable returns true for kinds an agent can stand on
func (k CellKind) Walkable() bool {
	return k == Floor || k == Corridor
}

// Cell represents a single cell/tile in the grid
type Cell struct {
	// Grid position; Row is the tile Y, Col the tile X
	Row int
	Col int

	Kind CellKind

	// Room is the index of the room covering this cell, or -1
	Room int
}
