// Package generator tests BSP layout generation: determinism, tiling,
// containment, obstacle clearance, connectivity and the wall export.
package generator

import (
	"errors"
	"reflect"
	"testing"

	"bsplayout/pkg/engine/geom"
	"bsplayout/pkg/engine/world"
	"bsplayout/pkg/game/connectivity"
)

const propertySeeds = 200

// generateSeed runs the default config with the given seed
func generateSeed(t *testing.T, cfg Config, seed int64) *Result {
	t.Helper()
	cfg.Seed = seed
	res, err := Generate(cfg)
	if err != nil {
		t.Fatalf("Generate(seed=%d) error: %v", seed, err)
	}
	return res
}

func TestBSPGenerate_Scenario64x40(t *testing.T) {
	res := generateSeed(t, DefaultConfig(), 12345)

	if len(res.Rooms) == 0 {
		t.Fatal("Rooms is empty, want at least one room")
	}
	for _, leaf := range res.Tree.Leaves() {
		if leaf.Room == nil {
			t.Fatalf("leaf %v has no room; default config should fill every leaf", leaf.Rect)
		}
	}
	if got, want := len(res.Connections), len(res.Rooms)-1; got != want {
		t.Errorf("len(Connections) = %d, want %d (rooms - 1)", got, want)
	}
	if got, want := len(res.Corridors), 2*(len(res.Rooms)-1); got != want {
		t.Errorf("len(Corridors) = %d, want %d (two legs per connection)", got, want)
	}
	if got, want := len(res.WallSegments), 4+4*len(res.Obstacles); got != want {
		t.Errorf("len(WallSegments) = %d, want %d", got, want)
	}
	if got, want := len(BuildWallSegments(res.Bounds, res.Obstacles)), 4+4*len(res.Obstacles); got != want {
		t.Errorf("len(BuildWallSegments) = %d, want %d", got, want)
	}
}

func TestBSPGenerate_PinnedDefaultLayout(t *testing.T) {
	res := generateSeed(t, DefaultConfig(), 12345)

	wantLeaves := []geom.Rect{
		{X: 0, Y: 0, Width: 22, Height: 23}, {X: 0, Y: 23, Width: 22, Height: 17},
		{X: 22, Y: 0, Width: 12, Height: 13}, {X: 22, Y: 13, Width: 12, Height: 13},
		{X: 22, Y: 26, Width: 12, Height: 14}, {X: 34, Y: 0, Width: 16, Height: 24},
		{X: 50, Y: 0, Width: 14, Height: 24}, {X: 34, Y: 24, Width: 16, Height: 16},
		{X: 50, Y: 24, Width: 14, Height: 16},
	}
	var leaves []geom.Rect
	for _, leaf := range res.Tree.Leaves() {
		leaves = append(leaves, leaf.Rect)
	}
	if !reflect.DeepEqual(leaves, wantLeaves) {
		t.Errorf("leaves = %v, want %v", leaves, wantLeaves)
	}

	wantRooms := []geom.Rect{
		{X: 4, Y: 2, Width: 9, Height: 10}, {X: 9, Y: 29, Width: 9, Height: 10},
		{X: 23, Y: 3, Width: 8, Height: 8}, {X: 23, Y: 18, Width: 8, Height: 7},
		{X: 24, Y: 30, Width: 8, Height: 9}, {X: 36, Y: 2, Width: 12, Height: 8},
		{X: 51, Y: 12, Width: 8, Height: 9}, {X: 36, Y: 27, Width: 13, Height: 8},
		{X: 51, Y: 27, Width: 7, Height: 7},
	}
	if !reflect.DeepEqual(res.Rooms, wantRooms) {
		t.Errorf("Rooms = %v, want %v", res.Rooms, wantRooms)
	}

	wantRoutes := []Route{
		HorizontalFirst, VerticalFirst, HorizontalFirst, HorizontalFirst,
		HorizontalFirst, HorizontalFirst, VerticalFirst, HorizontalFirst,
	}
	wantCorridors := []geom.Rect{
		{X: 8, Y: 6, Width: 7, Height: 2}, {X: 13, Y: 7, Width: 2, Height: 28},
		{X: 26, Y: 7, Width: 2, Height: 16}, {X: 27, Y: 21, Width: 1, Height: 2},
		{X: 27, Y: 6, Width: 2, Height: 2}, {X: 27, Y: 7, Width: 2, Height: 28},
		{X: 42, Y: 5, Width: 14, Height: 2}, {X: 54, Y: 6, Width: 2, Height: 11},
		{X: 42, Y: 30, Width: 13, Height: 2}, {X: 53, Y: 30, Width: 2, Height: 2},
		{X: 42, Y: 5, Width: 1, Height: 2}, {X: 41, Y: 6, Width: 2, Height: 26},
		{X: 26, Y: 6, Width: 2, Height: 2}, {X: 27, Y: 5, Width: 16, Height: 2},
		{X: 8, Y: 6, Width: 20, Height: 2}, {X: 26, Y: 7, Width: 2, Height: 1},
	}
	if len(res.Connections) != len(wantRoutes) {
		t.Fatalf("len(Connections) = %d, want %d", len(res.Connections), len(wantRoutes))
	}
	for i, c := range res.Connections {
		if c.Route != wantRoutes[i] {
			t.Errorf("Connections[%d].Route = %s, want %s", i, c.Route, wantRoutes[i])
		}
	}
	if !reflect.DeepEqual(res.Corridors, wantCorridors) {
		t.Errorf("Corridors = %v, want %v", res.Corridors, wantCorridors)
	}
	if len(res.Obstacles) != 0 {
		t.Errorf("Obstacles = %v, want none (clearance 2 leaves no room beside the corridors)", res.Obstacles)
	}
}

func TestBSPGenerate_PinnedObstacles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 3
	cfg.ObstacleClearance = 1
	res := generateSeed(t, cfg, 12345)

	want := []geom.Rect{{X: 37, Y: 29, Width: 2, Height: 2}}
	if !reflect.DeepEqual(res.Obstacles, want) {
		t.Errorf("Obstacles = %v, want %v", res.Obstacles, want)
	}
}

func TestBSPGenerate_NoObstacles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 0
	for seed := int64(1); seed <= 20; seed++ {
		res := generateSeed(t, cfg, seed)
		if len(res.Obstacles) != 0 {
			t.Errorf("seed %d: len(Obstacles) = %d, want 0", seed, len(res.Obstacles))
		}
		if len(res.WallSegments) != 4 {
			t.Errorf("seed %d: len(WallSegments) = %d, want 4", seed, len(res.WallSegments))
		}
	}
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 3
	for seed := int64(1); seed <= 50; seed++ {
		a := generateSeed(t, cfg, seed)
		b := generateSeed(t, cfg, seed)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("seed %d: two runs produced different results", seed)
		}
	}
}

func TestBSPGenerate_SeedsDiffer(t *testing.T) {
	first := generateSeed(t, DefaultConfig(), 1)
	for seed := int64(2); seed <= 10; seed++ {
		if !reflect.DeepEqual(first.Rooms, generateSeed(t, DefaultConfig(), seed).Rooms) {
			return
		}
	}
	t.Error("seeds 1..10 all produced identical rooms")
}

func TestBSPGenerate_CallsDoNotShareState(t *testing.T) {
	cfg := DefaultConfig()
	before := generateSeed(t, cfg, 77)

	// Mutating one result and running other seeds must not change a rerun
	before.Rooms[0] = geom.Rect{}
	generateSeed(t, cfg, 78)
	generateSeed(t, cfg, 79)

	after := generateSeed(t, cfg, 77)
	if after.Rooms[0].Empty() {
		t.Error("rerun saw a mutation made to an earlier result")
	}
}

func TestBSPGenerate_LeavesTileRoot(t *testing.T) {
	for seed := int64(1); seed <= propertySeeds; seed++ {
		res := generateSeed(t, DefaultConfig(), seed)
		leaves := res.Tree.Leaves()

		area := 0
		for i, a := range leaves {
			if !res.Bounds.ContainsRect(a.Rect) {
				t.Fatalf("seed %d: leaf %v outside bounds %v", seed, a.Rect, res.Bounds)
			}
			area += a.Rect.Area()
			for _, b := range leaves[i+1:] {
				if a.Rect.Overlaps(b.Rect) {
					t.Fatalf("seed %d: leaves %v and %v overlap", seed, a.Rect, b.Rect)
				}
			}
		}
		if area != res.Bounds.Area() {
			t.Fatalf("seed %d: leaf area %d != root area %d", seed, area, res.Bounds.Area())
		}
	}
}

func TestBSPGenerate_Containment(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= propertySeeds; seed++ {
		res := generateSeed(t, cfg, seed)
		for _, leaf := range res.Tree.Leaves() {
			if leaf.Room == nil {
				continue
			}
			if !leaf.Rect.Inflate(-cfg.RoomPadding).ContainsRect(*leaf.Room) {
				t.Fatalf("seed %d: room %v not inside padded leaf %v", seed, *leaf.Room, leaf.Rect)
			}
		}
		for _, r := range res.Rooms {
			if !res.Bounds.ContainsRect(r) {
				t.Fatalf("seed %d: room %v outside bounds", seed, r)
			}
		}
		for _, o := range res.Obstacles {
			if !res.Bounds.ContainsRect(o) {
				t.Fatalf("seed %d: obstacle %v outside bounds", seed, o)
			}
		}
	}
}

func TestBSPGenerate_ObstacleClearance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 3
	cfg.ObstacleClearance = 1
	for seed := int64(1); seed <= propertySeeds; seed++ {
		res := generateSeed(t, cfg, seed)
		c := cfg.ObstacleClearance
		for i, o := range res.Obstacles {
			for _, corr := range res.Corridors {
				if o.Inflate(c).Overlaps(corr.Inflate(c)) {
					t.Fatalf("seed %d: obstacle %v too close to corridor %v", seed, o, corr)
				}
			}
			for _, other := range res.Obstacles[i+1:] {
				if o.Overlaps(other) {
					t.Fatalf("seed %d: obstacles %v and %v overlap", seed, o, other)
				}
			}
		}
	}
}

func TestBSPGenerate_ObstacleBoundPerRoom(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 2
	cfg.ObstacleClearance = 1
	for seed := int64(1); seed <= propertySeeds; seed++ {
		res := generateSeed(t, cfg, seed)
		counted := 0
		for _, room := range res.Rooms {
			n := 0
			for _, o := range res.Obstacles {
				if room.ContainsRect(o) {
					n++
				}
			}
			if n > cfg.MaxObstaclesPerRoom {
				t.Fatalf("seed %d: room %v has %d obstacles, max %d", seed, room, n, cfg.MaxObstaclesPerRoom)
			}
			counted += n
		}
		if counted != len(res.Obstacles) {
			t.Fatalf("seed %d: %d obstacles found in rooms, %d placed", seed, counted, len(res.Obstacles))
		}
	}
}

func TestBSPGenerate_AllRoomsReachable(t *testing.T) {
	for seed := int64(1); seed <= propertySeeds; seed++ {
		res := generateSeed(t, DefaultConfig(), seed)
		g := connectivity.NewGraph(res.Rooms, res.Corridors)
		if missing := g.UnreachableRooms(); len(missing) > 0 {
			t.Fatalf("seed %d: rooms %v unreachable (isolated rooms)", seed, missing)
		}
	}
}

func TestBSPGenerate_AllRoomsReachableDeepTree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MapSize = Size{W: 120, H: 80}
	cfg.MaxDepth = 6
	cfg.MinLeafSize = 10
	for seed := int64(1); seed <= 50; seed++ {
		res := generateSeed(t, cfg, seed)
		if res.Stats.LeavesWithoutRoom > 0 {
			continue
		}
		if !connectivity.RoomsConnected(res.Rooms, res.Corridors) {
			t.Fatalf("seed %d: rooms not connected", seed)
		}
		if len(res.Connections) != len(res.Rooms)-1 {
			t.Fatalf("seed %d: %d connections for %d rooms", seed, len(res.Connections), len(res.Rooms))
		}
	}
}

func TestBSPGenerate_SingleTileRoomsReachable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinRoomSize = Size{W: 1, H: 1}
	cfg.RoomPadding = 0
	cfg.MinLeafSize = 1
	cfg.MaxDepth = 12
	cfg.CorridorWidth = 1
	cfg.MaxObstaclesPerRoom = 0
	for seed := int64(0); seed < 50; seed++ {
		res := generateSeed(t, cfg, seed)
		if res.Stats.LeavesWithoutRoom > 0 {
			continue
		}
		for _, r := range res.Rooms {
			if c := r.CenterTile(); !r.Contains(c.X, c.Y) {
				t.Fatalf("seed %d: room %v centre %v outside the room", seed, r, c)
			}
		}
		if missing := connectivity.NewGraph(res.Rooms, res.Corridors).UnreachableRooms(); len(missing) > 0 {
			t.Fatalf("seed %d: rooms %v unreachable", seed, missing)
		}
		grid := world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles)
		if !grid.FloorConnected() {
			t.Fatalf("seed %d: floor tiles not connected", seed)
		}
	}
}

func TestBSPGenerate_Stats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxObstaclesPerRoom = 3
	res := generateSeed(t, cfg, 9)
	s := res.Stats
	if s.Leaves != len(res.Tree.Leaves()) {
		t.Errorf("Stats.Leaves = %d, want %d", s.Leaves, len(res.Tree.Leaves()))
	}
	if s.Leaves-s.LeavesWithoutRoom != len(res.Rooms) {
		t.Errorf("leaves %d - without room %d != rooms %d", s.Leaves, s.LeavesWithoutRoom, len(res.Rooms))
	}
	if s.ObstaclesPlaced != len(res.Obstacles) {
		t.Errorf("Stats.ObstaclesPlaced = %d, want %d", s.ObstaclesPlaced, len(res.Obstacles))
	}
	if got := s.ObstaclesPlaced + s.ObstaclesAbandoned + s.ObstacleSlotsStopped; got != s.ObstacleSlots {
		t.Errorf("placed+abandoned+stopped = %d, want ObstacleSlots %d", got, s.ObstacleSlots)
	}
}

func TestBSPGenerate_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinLeafSize = 0
	res, err := Generate(cfg)
	if err == nil {
		t.Fatal("Generate with MinLeafSize=0 returned nil error")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error %v does not wrap ErrInvalidConfig", err)
	}
	if res != nil {
		t.Errorf("Generate returned %v with an error, want nil", res)
	}
}

func TestDefaultGenerator_Name(t *testing.T) {
	if DefaultGenerator.Name() != "BSP Tree" {
		t.Errorf("DefaultGenerator.Name() = %q, want %q", DefaultGenerator.Name(), "BSP Tree")
	}
}
