package generator

import (
	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/rng"
)

// PlaceRooms gives every leaf of tree a room where one fits and returns the
// rooms in leaf order. Leaves too small for the minimum room keep a nil Room.
func PlaceRooms(tree *Node, cfg Config, rnd *rng.Rand) []geom.Rect {
	b := newBuilder(cfg, rnd, nil)
	return b.placeRooms(tree)
}

func (b *builder) placeRooms(tree *Node) []geom.Rect {
	var rooms []geom.Rect
	for _, leaf := range tree.Leaves() {
		b.stats.Leaves++
		room, ok := b.roomFor(leaf)
		if !ok {
			leaf.Room = nil
			b.stats.LeavesWithoutRoom++
			b.log.WithFields(logrus.Fields{
				"leaf":  leaf.Rect.String(),
				"depth": leaf.Depth,
			}).Debug("leaf too small for a room")
			continue
		}
		leaf.Room = &room
		rooms = append(rooms, room)
	}
	return rooms
}

// roomFor draws a room inside leaf keeping RoomPadding from every edge
func (b *builder) roomFor(leaf *Node) (geom.Rect, bool) {
	r := leaf.Rect
	pad := b.cfg.RoomPadding

	maxW := min(b.cfg.MaxRoomSize.W, r.Width-2*pad)
	maxH := min(b.cfg.MaxRoomSize.H, r.Height-2*pad)
	if maxW < b.cfg.MinRoomSize.W || maxH < b.cfg.MinRoomSize.H {
		return geom.Rect{}, false
	}
	minW := min(b.cfg.MinRoomSize.W, maxW)
	minH := min(b.cfg.MinRoomSize.H, maxH)

	w := b.rnd.Range(minW, maxW+1)
	h := b.rnd.Range(minH, maxH+1)
	x := b.rnd.Range(r.X+pad, r.Right()-pad-w+1)
	y := b.rnd.Range(r.Y+pad, r.Bottom()-pad-h+1)
	return geom.NewRect(x, y, w, h), true
}
