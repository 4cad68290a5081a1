package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/rng"
)

// Route is the leg order of an L-shaped corridor
type Route int

const (
	HorizontalFirst Route = iota
	VerticalFirst
)

// String returns the string representation of a route
func (r Route) String() string {
	switch r {
	case HorizontalFirst:
		return "horizontal-first"
	case VerticalFirst:
		return "vertical-first"
	default:
		return "unknown"
	}
}

// MarshalText encodes the route by name
func (r Route) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a route name written by MarshalText
func (r *Route) UnmarshalText(b []byte) error {
	switch string(b) {
	case "horizontal-first":
		*r = HorizontalFirst
	case "vertical-first":
		*r = VerticalFirst
	default:
		return fmt.Errorf("unknown route %q", b)
	}
	return nil
}

// Connection links the representative rooms of two sibling subtrees
type Connection struct {
	From  geom.Rect    `json:"from"`
	To    geom.Rect    `json:"to"`
	Route Route        `json:"route"`
	Legs  [2]geom.Rect `json:"legs"`
}

// Connect walks tree in post-order and links each pair of sibling subtrees
// that both contain a room. Siblings without a room are skipped.
func Connect(tree *Node, cfg Config, rnd *rng.Rand) []Connection {
	b := newBuilder(cfg, rnd, nil)
	return b.connect(tree, nil)
}

// CorridorRects flattens connections into their corridor rectangles
func CorridorRects(conns []Connection) []geom.Rect {
	rects := make([]geom.Rect, 0, 2*len(conns))
	for _, c := range conns {
		rects = append(rects, c.Legs[0], c.Legs[1])
	}
	return rects
}

func (b *builder) connect(node *Node, conns []Connection) []Connection {
	if node == nil || node.IsLeaf() {
		return conns
	}
	conns = b.connect(node.Left, conns)
	conns = b.connect(node.Right, conns)

	from, okLeft := node.Left.FirstRoom()
	to, okRight := node.Right.FirstRoom()
	if !okLeft || !okRight {
		b.stats.SkippedConnections++
		b.log.WithFields(logrus.Fields{
			"node":       node.Rect.String(),
			"left_room":  okLeft,
			"right_room": okRight,
		}).Debug("sibling subtree has no room, skipping corridor")
		return conns
	}

	return append(conns, b.corridor(from, to))
}

// corridor builds the two legs of an L between the room centres
func (b *builder) corridor(from, to geom.Rect) Connection {
	a, c := from.CenterTile(), to.CenterTile()
	width := b.cfg.CorridorWidth

	conn := Connection{From: from, To: to}
	if b.rnd.Chance(0.5) {
		conn.Route = HorizontalFirst
		conn.Legs[0] = spanX(a, c, width)
		conn.Legs[1] = spanY(geom.Point{X: c.X, Y: a.Y}, c, width)
	} else {
		conn.Route = VerticalFirst
		conn.Legs[0] = spanY(a, c, width)
		conn.Legs[1] = spanX(geom.Point{X: a.X, Y: c.Y}, c, width)
	}
	return conn
}

// spanX returns a horizontal corridor from a.X to b.X inclusive, centred on a.Y
func spanX(a, b geom.Point, width int) geom.Rect {
	x0, x1 := min(a.X, b.X), max(a.X, b.X)
	return geom.NewRect(x0, a.Y-width/2, max(1, x1-x0+1), max(1, width))
}

// spanY returns a vertical corridor from a.Y to b.Y inclusive, centred on a.X
func spanY(a, b geom.Point, width int) geom.Rect {
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)
	return geom.NewRect(a.X-width/2, y0, max(1, width), max(1, y1-y0+1))
}
