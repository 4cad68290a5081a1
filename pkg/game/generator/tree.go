package generator

import (
	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/rng"
)

// Node is a node of the BSP tree. Internal nodes have both children; leaves
// have neither and may carry a room.
type Node struct {
	Rect        geom.Rect
	Left, Right *Node
	Room        *geom.Rect
	Depth       int
}

// IsLeaf returns true if the node has no children
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Walk visits the subtree in pre-order
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	n.Left.Walk(fn)
	n.Right.Walk(fn)
}

// Clone returns a deep copy of the subtree
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Rect: n.Rect, Depth: n.Depth, Left: n.Left.Clone(), Right: n.Right.Clone()}
	if n.Room != nil {
		room := *n.Room
		c.Room = &room
	}
	return c
}

// Leaves returns the leaves of the subtree from left to right
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// FirstRoom returns the room reached by descending left first, then right.
// Returns false if no leaf of the subtree has a room.
func (n *Node) FirstRoom() (geom.Rect, bool) {
	if n == nil {
		return geom.Rect{}, false
	}
	if n.Room != nil {
		return *n.Room, true
	}
	if r, ok := n.Left.FirstRoom(); ok {
		return r, true
	}
	return n.Right.FirstRoom()
}

// Split partitions root into a BSP tree drawing from rnd
func Split(root geom.Rect, cfg Config, rnd *rng.Rand) *Node {
	b := newBuilder(cfg, rnd, nil)
	return b.split(root)
}

func (b *builder) split(root geom.Rect) *Node {
	node := &Node{Rect: root}
	b.splitNode(node)
	return node
}

// splitNode recursively splits a node until depth or size stops it
func (b *builder) splitNode(node *Node) {
	r := node.Rect
	minLeaf := b.cfg.MinLeafSize

	if node.Depth >= b.cfg.MaxDepth {
		return
	}
	if r.Width < minLeaf*2 && r.Height < minLeaf*2 {
		return // Too small to split
	}

	// Split across the long axis when one side is 25% longer, otherwise flip a coin
	var vertical bool
	switch {
	case float64(r.Width) >= float64(r.Height)*1.25:
		vertical = true
	case float64(r.Height) >= float64(r.Width)*1.25:
		vertical = false
	default:
		vertical = b.rnd.Chance(0.5)
	}

	depth := node.Depth + 1
	if vertical {
		lo, hi := r.X+minLeaf, r.Right()-minLeaf
		if hi <= lo {
			b.abortSplit(node, "vertical")
			return
		}
		x := b.rnd.Range(lo, hi)
		node.Left = &Node{Rect: geom.NewRect(r.X, r.Y, x-r.X, r.Height), Depth: depth}
		node.Right = &Node{Rect: geom.NewRect(x, r.Y, r.Right()-x, r.Height), Depth: depth}
	} else {
		lo, hi := r.Y+minLeaf, r.Bottom()-minLeaf
		if hi <= lo {
			b.abortSplit(node, "horizontal")
			return
		}
		y := b.rnd.Range(lo, hi)
		node.Left = &Node{Rect: geom.NewRect(r.X, r.Y, r.Width, y-r.Y), Depth: depth}
		node.Right = &Node{Rect: geom.NewRect(r.X, y, r.Width, r.Bottom()-y), Depth: depth}
	}

	b.splitNode(node.Left)
	b.splitNode(node.Right)
}

func (b *builder) abortSplit(node *Node, axis string) {
	b.stats.AbortedSplits++
	b.log.WithFields(logrus.Fields{
		"rect":  node.Rect.String(),
		"depth": node.Depth,
		"axis":  axis,
	}).Debug("split range empty, keeping node as leaf")
}
