package world

import (
	"github.com/zyedidia/generic/mapset"

	"bsplayout/pkg/engine/geom"
)

// Grid is a tile raster of a layout with encapsulated cell storage
type Grid struct {
	cells  [][]*Cell
	rows   int
	cols   int
	origin geom.Point
}

// NewGrid creates a grid of Rock cells with the given dimensions
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rasterize paints rooms, corridors and obstacles into a grid covering bounds.
// Rooms are painted first; corridor tiles only claim cells that are not
// already room floor; obstacles overwrite whatever is beneath them.
func Rasterize(bounds geom.Rect, rooms, corridors, obstacles []geom.Rect) *Grid {
	g := NewGrid(bounds.Height, bounds.Width)
	g.origin = geom.Point{X: bounds.X, Y: bounds.Y}

	for i, r := range rooms {
		g.paint(r, func(c *Cell) {
			c.Kind = Floor
			c.Room = i
		})
	}
	for _, r := range corridors {
		g.paint(r, func(c *Cell) {
			// Only mark as corridor if not already a room
			if c.Kind == Rock {
				c.Kind = Corridor
			}
		})
	}
	for _, r := range obstacles {
		g.paint(r, func(c *Cell) {
			c.Kind = Obstacle
		})
	}
	return g
}

// paint applies fn to every cell of r that lies inside the grid
func (g *Grid) paint(r geom.Rect, fn func(c *Cell)) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if c := g.At(x, y); c != nil {
				fn(c)
			}
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// At returns the cell at layout tile coordinates, or nil if out of bounds
func (g *Grid) At(x, y int) *Cell {
	return g.GetCell(y-g.origin.Y, x-g.origin.X)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	rowRel, colRel := dir.Delta()
	if rowRel == 0 && colRel == 0 {
		return nil
	}
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)
	for row := 0; row < rows; row++ {
		g.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			g.cells[row][col] = &Cell{Row: row, Col: col, Kind: Rock, Room: -1}
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CountKind returns how many cells hold the given kind
func (g *Grid) CountKind(kind CellKind) int {
	n := 0
	g.ForEachCell(func(_, _ int, cell *Cell) {
		if cell.Kind == kind {
			n++
		}
	})
	return n
}

// FirstWalkable returns the first walkable cell in row-major order, or nil
func (g *Grid) FirstWalkable() *Cell {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if c := g.cells[row][col]; c.Kind.Walkable() {
				return c
			}
		}
	}
	return nil
}

// Reachable returns all walkable cells reachable from start through 4-connected moves
func (g *Grid) Reachable(start *Cell) mapset.Set[*Cell] {
	reachable := mapset.New[*Cell]()
	queue := []*Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == nil || !current.Kind.Walkable() || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range AllDirections() {
			n := g.GetCellRelative(current, dir)
			if n != nil && n.Kind.Walkable() && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

// FloorConnected returns true if every walkable cell is reachable from every other
func (g *Grid) FloorConnected() bool {
	start := g.FirstWalkable()
	if start == nil {
		return true
	}
	walkable := g.CountKind(Floor) + g.CountKind(Corridor)
	return g.Reachable(start).Size() == walkable
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}
	if g.FirstWalkable() == nil {
		return "Grid has no walkable cells"
	}
	if !g.FloorConnected() {
		return "Grid floor is not connected"
	}
	return ""
}
