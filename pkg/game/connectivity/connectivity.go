// Package connectivity checks that the rooms of a layout can reach each other
// through the open floor made of rooms and corridors.
package connectivity

import (
	"github.com/zyedidia/generic/mapset"

	"bsplayout/pkg/engine/geom"
)

// NodeKind tells rooms and corridors apart in the floor graph
type NodeKind int

const (
	KindRoom NodeKind = iota
	KindCorridor
)

// Node is one floor rectangle of the graph
type Node struct {
	Kind  NodeKind
	Index int // index into the rooms or corridors slice
	Rect  geom.Rect
}

// Graph links floor rectangles that touch or overlap
type Graph struct {
	Nodes     []Node
	Adjacency [][]int
	roomCount int
}

// NewGraph builds the floor graph. Rooms come first, so node i < len(rooms)
// is rooms[i].
func NewGraph(rooms, corridors []geom.Rect) *Graph {
	g := &Graph{roomCount: len(rooms)}
	for i, r := range rooms {
		g.Nodes = append(g.Nodes, Node{Kind: KindRoom, Index: i, Rect: r})
	}
	for i, c := range corridors {
		g.Nodes = append(g.Nodes, Node{Kind: KindCorridor, Index: i, Rect: c})
	}

	g.Adjacency = make([][]int, len(g.Nodes))
	for i := range g.Nodes {
		for j := i + 1; j < len(g.Nodes); j++ {
			if g.Nodes[i].Rect.Touches(g.Nodes[j].Rect) {
				g.Adjacency[i] = append(g.Adjacency[i], j)
				g.Adjacency[j] = append(g.Adjacency[j], i)
			}
		}
	}
	return g
}

// Reachable returns the node indices reachable from start via BFS
func (g *Graph) Reachable(start int) mapset.Set[int] {
	visited := mapset.New[int]()
	if start < 0 || start >= len(g.Nodes) {
		return visited
	}

	queue := []int{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range g.Adjacency[current] {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited
}

// UnreachableRooms returns the indices of rooms that cannot be reached from
// rooms[0]. Returns nil when every room is reachable or there are no rooms.
func (g *Graph) UnreachableRooms() []int {
	if g.roomCount == 0 {
		return nil
	}
	reached := g.Reachable(0)
	var missing []int
	for i := 0; i < g.roomCount; i++ {
		if !reached.Has(i) {
			missing = append(missing, i)
		}
	}
	return missing
}

// Components returns the number of connected groups of rooms
func (g *Graph) Components() int {
	seen := mapset.New[int]()
	count := 0
	for i := 0; i < g.roomCount; i++ {
		if seen.Has(i) {
			continue
		}
		count++
		g.Reachable(i).Each(func(n int) {
			seen.Put(n)
		})
	}
	return count
}

// RoomsConnected returns true if every room reaches every other room
func RoomsConnected(rooms, corridors []geom.Rect) bool {
	return len(NewGraph(rooms, corridors).UnreachableRooms()) == 0
}
