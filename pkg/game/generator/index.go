package generator

import (
	"github.com/dhconnelly/rtreego"

	"bsplayout/pkg/engine/geom"
)

// indexedRect adapts a tile rect to rtreego.Spatial
type indexedRect struct {
	rect   geom.Rect
	bounds rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface
func (e *indexedRect) Bounds() rtreego.Rect {
	return e.bounds
}

// rectIndex is a spatial index over tile rects. The R-tree is only a broad
// phase; the final answer always comes from the integer overlap test.
type rectIndex struct {
	tree *rtreego.Rtree
}

func newRectIndex(rects []geom.Rect) *rectIndex {
	idx := &rectIndex{tree: rtreego.NewTree(2, 4, 16)}
	for _, r := range rects {
		idx.insert(r)
	}
	return idx
}

func (idx *rectIndex) insert(r geom.Rect) {
	if r.Empty() {
		return
	}
	idx.tree.Insert(&indexedRect{rect: r, bounds: searchBounds(r, 0)})
}

// overlapsInflated returns true if r and any indexed rect overlap once both
// are inflated by pad
func (idx *rectIndex) overlapsInflated(r geom.Rect, pad int) bool {
	grown := r.Inflate(pad)
	for _, s := range idx.tree.SearchIntersect(searchBounds(r, 2*pad)) {
		q := s.(*indexedRect).rect
		if grown.Overlaps(q.Inflate(pad)) {
			return true
		}
	}
	return false
}

// searchBounds converts r grown by grow tiles into an R-tree box with half a
// tile of slack, so edge handling inside rtreego cannot drop a candidate
func searchBounds(r geom.Rect, grow int) rtreego.Rect {
	g := r.Inflate(grow)
	box, _ := rtreego.NewRect(
		rtreego.Point{float64(g.X) - 0.5, float64(g.Y) - 0.5},
		[]float64{float64(g.Width) + 1, float64(g.Height) + 1},
	)
	return box
}
