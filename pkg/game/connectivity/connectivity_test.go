package connectivity

import (
	"testing"

	"bsplayout/pkg/engine/geom"
)

// TestRoomsConnected_CorridorBridge verifies that two rooms joined by a
// corridor overlapping both are connected.
func TestRoomsConnected_CorridorBridge(t *testing.T) {
	rooms := []geom.Rect{geom.NewRect(0, 0, 4, 4), geom.NewRect(10, 0, 4, 4)}
	corridors := []geom.Rect{geom.NewRect(2, 1, 10, 2)}
	if !RoomsConnected(rooms, corridors) {
		t.Error("RoomsConnected = false, want true (corridor overlaps both rooms)")
	}
}

// TestRoomsConnected_EdgeContact verifies that sharing an edge is enough.
func TestRoomsConnected_EdgeContact(t *testing.T) {
	rooms := []geom.Rect{geom.NewRect(0, 0, 4, 4), geom.NewRect(6, 0, 4, 4)}
	corridors := []geom.Rect{geom.NewRect(4, 1, 2, 2)}
	if !RoomsConnected(rooms, corridors) {
		t.Error("RoomsConnected = false, want true (corridor shares edges with both rooms)")
	}
}

// TestRoomsConnected_CornerOnly verifies that diagonal corner contact does not connect.
func TestRoomsConnected_CornerOnly(t *testing.T) {
	rooms := []geom.Rect{geom.NewRect(0, 0, 4, 4), geom.NewRect(4, 4, 4, 4)}
	if RoomsConnected(rooms, nil) {
		t.Error("RoomsConnected = true, want false (rooms only meet at a corner)")
	}
}

func TestUnreachableRooms_Isolated(t *testing.T) {
	rooms := []geom.Rect{
		geom.NewRect(0, 0, 4, 4),
		geom.NewRect(10, 0, 4, 4),
		geom.NewRect(30, 30, 4, 4),
	}
	corridors := []geom.Rect{geom.NewRect(2, 1, 10, 2)}
	g := NewGraph(rooms, corridors)

	missing := g.UnreachableRooms()
	if len(missing) != 1 || missing[0] != 2 {
		t.Errorf("UnreachableRooms() = %v, want [2]", missing)
	}
	if got := g.Components(); got != 2 {
		t.Errorf("Components() = %d, want 2", got)
	}
}

func TestUnreachableRooms_NoRooms(t *testing.T) {
	g := NewGraph(nil, []geom.Rect{geom.NewRect(0, 0, 3, 1)})
	if missing := g.UnreachableRooms(); missing != nil {
		t.Errorf("UnreachableRooms() = %v, want nil", missing)
	}
	if !RoomsConnected(nil, nil) {
		t.Error("RoomsConnected(nil, nil) = false, want true")
	}
}

func TestReachable_OutOfRangeStart(t *testing.T) {
	g := NewGraph([]geom.Rect{geom.NewRect(0, 0, 2, 2)}, nil)
	if got := g.Reachable(5).Size(); got != 0 {
		t.Errorf("Reachable(5).Size() = %d, want 0", got)
	}
	if got := g.Reachable(0).Size(); got != 1 {
		t.Errorf("Reachable(0).Size() = %d, want 1", got)
	}
}
