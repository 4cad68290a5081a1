// Package geom holds the integer tile geometry shared by the layout generator
// and its consumers.
package geom

import (
	"fmt"
	"math"
)

// Point is a tile coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Rect is an axis-aligned rectangle over tile coordinates.
// It covers [X, X+Width) horizontally and [Y, Y+Height) vertically.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty returns true if the rect has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of tiles covered by the rect
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

// Center returns the exact geometric centre
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// CenterTile returns the centre rounded to the nearest tile, kept inside r.
// Halves round to even; a 1-wide side at an odd coordinate would otherwise
// round to the tile past its edge.
func (r Rect) CenterTile() Point {
	cx, cy := r.Center()
	p := Point{X: int(math.RoundToEven(cx)), Y: int(math.RoundToEven(cy))}
	if r.Width > 0 {
		p.X = min(max(p.X, r.X), r.Right()-1)
	}
	if r.Height > 0 {
		p.Y = min(max(p.Y, r.Y), r.Bottom()-1)
	}
	return p
}

// Inflate grows the rect by n tiles on every side. Negative n shrinks it.
func (r Rect) Inflate(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, Width: r.Width + 2*n, Height: r.Height + 2*n}
}

// Overlaps returns true if the two rects share at least one tile.
// Rects that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return o.X < r.Right() && o.Right() > r.X && o.Y < r.Bottom() && o.Bottom() > r.Y
}

// Touches returns true if the rects overlap or share an edge of positive length.
// Corner-only contact does not count.
func (r Rect) Touches(o Rect) bool {
	xOverlap := min(r.Right(), o.Right()) - max(r.X, o.X)
	yOverlap := min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	if xOverlap < 0 || yOverlap < 0 {
		return false
	}
	return xOverlap > 0 || yOverlap > 0
}

// Contains returns true if the tile (x, y) lies inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if o lies entirely inside r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Intersect returns the shared area of two rects; the result is empty if they do not overlap
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// WallSegment is an axis-aligned line bounding the map or an obstacle
type WallSegment struct {
	A        Point `json:"a"`
	B        Point `json:"b"`
	Vertical bool  `json:"vertical"`
}

// Length returns the number of tiles the segment spans
func (s WallSegment) Length() int {
	if s.Vertical {
		return abs(s.B.Y - s.A.Y)
	}
	return abs(s.B.X - s.A.X)
}

// OutlineSegments returns the four edges of r: bottom, top, left, right
func OutlineSegments(r Rect) [4]WallSegment {
	bl := Point{X: r.X, Y: r.Y}
	br := Point{X: r.Right(), Y: r.Y}
	tl := Point{X: r.X, Y: r.Bottom()}
	tr := Point{X: r.Right(), Y: r.Bottom()}
	return [4]WallSegment{
		{A: bl, B: br},                 // bottom
		{A: tl, B: tr},                 // top
		{A: bl, B: tl, Vertical: true}, // left
		{A: br, B: tr, Vertical: true}, // right
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
