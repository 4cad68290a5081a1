package generator

import (
	"github.com/sirupsen/logrus"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/rng"
)

// PlaceObstacles scatters up to MaxObstaclesPerRoom solid blocks in each room.
// The count per room is an upper bound: a slot whose attempts all collide is
// dropped, and a room too small for the minimum block gets no further blocks.
func PlaceObstacles(rooms, corridors []geom.Rect, cfg Config, rnd *rng.Rand) []geom.Rect {
	b := newBuilder(cfg, rnd, nil)
	return b.placeObstacles(rooms, corridors)
}

func (b *builder) placeObstacles(rooms, corridors []geom.Rect) []geom.Rect {
	if b.cfg.MaxObstaclesPerRoom <= 0 {
		return nil
	}

	clearance := b.cfg.ObstacleClearance
	corridorIdx := newRectIndex(corridors)
	placedIdx := newRectIndex(nil)

	var obstacles []geom.Rect
	for roomIdx, room := range rooms {
		k := b.rnd.Range(0, b.cfg.MaxObstaclesPerRoom+1)
		b.stats.ObstacleSlots += k

		for i := 0; i < k; i++ {
			maxW := min(b.cfg.MaxObstacleSize.W, room.Width-2*clearance)
			maxH := min(b.cfg.MaxObstacleSize.H, room.Height-2*clearance)
			if maxW < b.cfg.MinObstacleSize.W || maxH < b.cfg.MinObstacleSize.H {
				b.stats.ObstacleSlotsStopped += k - i
				b.log.WithFields(logrus.Fields{
					"room":    roomIdx,
					"skipped": k - i,
				}).Debug("room too small for obstacles")
				break
			}

			obs, ok := b.sampleObstacle(room, maxW, maxH, corridorIdx, placedIdx)
			if !ok {
				b.stats.ObstaclesAbandoned++
				b.log.WithFields(logrus.Fields{
					"room":     roomIdx,
					"slot":     i,
					"attempts": MaxPlacementAttempts,
				}).Debug("obstacle slot abandoned")
				continue
			}
			placedIdx.insert(obs)
			obstacles = append(obstacles, obs)
		}
	}

	b.stats.ObstaclesPlaced = len(obstacles)
	return obstacles
}

// sampleObstacle draws candidates inside room until one keeps its clearance
// from every corridor and every placed obstacle
func (b *builder) sampleObstacle(room geom.Rect, maxW, maxH int, corridors, placed *rectIndex) (geom.Rect, bool) {
	clearance := b.cfg.ObstacleClearance
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		w := b.rnd.Range(b.cfg.MinObstacleSize.W, maxW+1)
		h := b.rnd.Range(b.cfg.MinObstacleSize.H, maxH+1)
		x := b.rnd.Range(room.X+clearance, room.Right()-clearance-w+1)
		y := b.rnd.Range(room.Y+clearance, room.Bottom()-clearance-h+1)
		obs := geom.NewRect(x, y, w, h)

		if corridors.overlapsInflated(obs, clearance) || placed.overlapsInflated(obs, clearance) {
			continue
		}
		return obs, true
	}
	return geom.Rect{}, false
}
