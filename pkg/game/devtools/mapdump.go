// Package devtools provides developer tools for inspecting and exporting layouts.
package devtools

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bsplayout/pkg/engine/world"
	"bsplayout/pkg/game/connectivity"
	"bsplayout/pkg/game/generator"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell kind
func cellSymbol(kind world.CellKind) rune {
	switch kind {
	case world.Floor:
		return '.'
	case world.Corridor:
		return ','
	case world.Obstacle:
		return 'O'
	default:
		return '#'
	}
}

// writeMapGrid writes the grid one row per line
func writeMapGrid(w io.Writer, grid *world.Grid) {
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", cellSymbol(grid.GetCell(row, col).Kind))
		}
		fmt.Fprintln(w)
	}
}

// WriteASCIIMap writes only the tile map of res
func WriteASCIIMap(w io.Writer, res *generator.Result) error {
	var buf bytes.Buffer
	writeMapGrid(&buf, world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles))
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteMapDump writes a full debug dump of res: metadata, legend, map, and
// detailed room/connection/obstacle/wall lists.
// Format is human-readable (sections, key: value, consistent structure).
func WriteMapDump(w io.Writer, res *generator.Result) error {
	var f bytes.Buffer
	cfg := res.Config
	grid := world.Rasterize(res.Bounds, res.Rooms, res.Corridors, res.Obstacles)

	// --- Metadata ---
	fmt.Fprintln(&f, "=== MAP DUMP DEBUG (BSP layout, corridors, obstacles) ===")
	fmt.Fprintln(&f, "")
	fmt.Fprintln(&f, "--- Metadata ---")
	fmt.Fprintf(&f, "seed: %d\n", cfg.Seed)
	fmt.Fprintf(&f, "map_width: %d\n", res.Bounds.Width)
	fmt.Fprintf(&f, "map_height: %d\n", res.Bounds.Height)
	fmt.Fprintf(&f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, y grows downward)\n")
	fmt.Fprintf(&f, "max_depth: %d\n", cfg.MaxDepth)
	fmt.Fprintf(&f, "min_leaf_size: %d\n", cfg.MinLeafSize)
	fmt.Fprintf(&f, "corridor_width: %d\n", cfg.CorridorWidth)
	fmt.Fprintf(&f, "room_padding: %d\n", cfg.RoomPadding)
	fmt.Fprintf(&f, "room_size: %dx%d..%dx%d\n", cfg.MinRoomSize.W, cfg.MinRoomSize.H, cfg.MaxRoomSize.W, cfg.MaxRoomSize.H)
	fmt.Fprintf(&f, "max_obstacles_per_room: %d\n", cfg.MaxObstaclesPerRoom)
	fmt.Fprintf(&f, "obstacle_size: %dx%d..%dx%d\n", cfg.MinObstacleSize.W, cfg.MinObstacleSize.H, cfg.MaxObstacleSize.W, cfg.MaxObstacleSize.H)
	fmt.Fprintf(&f, "obstacle_clearance: %d\n", cfg.ObstacleClearance)
	fmt.Fprintf(&f, "floor_connected: %v\n", grid.FloorConnected())
	fmt.Fprintln(&f, "")

	// --- Legend ---
	fmt.Fprintln(&f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(&f, ". = room floor  , = corridor  O = obstacle  # = solid")
	fmt.Fprintln(&f, "")

	// --- Map ---
	fmt.Fprintln(&f, "--- Map ---")
	writeMapGrid(&f, grid)
	fmt.Fprintln(&f, "")

	// --- Rooms ---
	fmt.Fprintln(&f, "--- Rooms ---")
	for i, r := range res.Rooms {
		c := r.CenterTile()
		fmt.Fprintf(&f, "  index: %d x: %d y: %d width: %d height: %d center: %d,%d\n", i, r.X, r.Y, r.Width, r.Height, c.X, c.Y)
	}
	fmt.Fprintln(&f, "")

	// --- Connections ---
	fmt.Fprintln(&f, "--- Connections ---")
	for i, c := range res.Connections {
		fmt.Fprintf(&f, "  index: %d from: %v to: %v route: %s leg_a: %v leg_b: %v\n", i, c.From, c.To, c.Route, c.Legs[0], c.Legs[1])
	}
	fmt.Fprintln(&f, "")

	// --- Obstacles ---
	fmt.Fprintln(&f, "--- Obstacles ---")
	for i, o := range res.Obstacles {
		fmt.Fprintf(&f, "  index: %d x: %d y: %d width: %d height: %d\n", i, o.X, o.Y, o.Width, o.Height)
	}
	fmt.Fprintln(&f, "")

	// --- Walls ---
	fmt.Fprintln(&f, "--- Wall segments ---")
	for i, s := range res.WallSegments {
		fmt.Fprintf(&f, "  index: %d a: %d,%d b: %d,%d vertical: %v length: %d\n", i, s.A.X, s.A.Y, s.B.X, s.B.Y, s.Vertical, s.Length())
	}
	fmt.Fprintln(&f, "")

	// --- Summary ---
	st := res.Stats
	fmt.Fprintln(&f, "--- Summary ---")
	fmt.Fprintf(&f, "leaves: %d\n", st.Leaves)
	fmt.Fprintf(&f, "leaves_without_room: %d\n", st.LeavesWithoutRoom)
	fmt.Fprintf(&f, "aborted_splits: %d\n", st.AbortedSplits)
	fmt.Fprintf(&f, "rooms: %d\n", len(res.Rooms))
	fmt.Fprintf(&f, "connections: %d\n", len(res.Connections))
	fmt.Fprintf(&f, "skipped_connections: %d\n", st.SkippedConnections)
	graph := connectivity.NewGraph(res.Rooms, res.Corridors)
	fmt.Fprintf(&f, "room_groups: %d\n", graph.Components())
	fmt.Fprintf(&f, "unreachable_rooms: %v\n", graph.UnreachableRooms())
	fmt.Fprintf(&f, "corridors: %d\n", len(res.Corridors))
	fmt.Fprintf(&f, "obstacle_slots: %d\n", st.ObstacleSlots)
	fmt.Fprintf(&f, "obstacles_placed: %d\n", st.ObstaclesPlaced)
	fmt.Fprintf(&f, "obstacles_abandoned: %d\n", st.ObstaclesAbandoned)
	fmt.Fprintf(&f, "obstacle_slots_stopped: %d\n", st.ObstacleSlotsStopped)
	fmt.Fprintf(&f, "wall_segments: %d\n", len(res.WallSegments))
	fmt.Fprintf(&f, "floor_tiles: %d\n", grid.CountKind(world.Floor))
	fmt.Fprintf(&f, "corridor_tiles: %d\n", grid.CountKind(world.Corridor))
	fmt.Fprintf(&f, "obstacle_tiles: %d\n", grid.CountKind(world.Obstacle))

	_, err := w.Write(f.Bytes())
	return err
}

// DumpMapToFile writes the full debug dump to filename (map.txt when empty)
// and returns the absolute path written.
func DumpMapToFile(res *generator.Result, filename string) (string, error) {
	if res == nil {
		return "", fmt.Errorf("no layout")
	}
	if filename == "" {
		filename = mapDumpFilename
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, res); err != nil {
		return "", err
	}
	return absPath, nil
}
