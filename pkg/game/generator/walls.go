package generator

import "bsplayout/pkg/engine/geom"

// BuildWallSegments returns the outline of bounds followed by the outline of
// every obstacle. Rooms and corridors are open floor and emit nothing.
func BuildWallSegments(bounds geom.Rect, obstacles []geom.Rect) []geom.WallSegment {
	segs := make([]geom.WallSegment, 0, 4+4*len(obstacles))
	outline := geom.OutlineSegments(bounds)
	segs = append(segs, outline[:]...)
	for _, obs := range obstacles {
		outline = geom.OutlineSegments(obs)
		segs = append(segs, outline[:]...)
	}
	return segs
}

// Walls rebuilds the wall segments of a result from its bounds and obstacles
func (r *Result) Walls() []geom.WallSegment {
	return BuildWallSegments(r.Bounds, r.Obstacles)
}
