package mapper

import "testing"

func TestZoneToWorld(t *testing.T) {
	p := ZoneToWorld(2, 3)
	if p.X != 2000 || p.Y != 3000 {
		t.Errorf("expected (2000,3000), got (%v,%v)", p.X, p.Y)
	}
}

func TestRoomToWorld(t *testing.T) {
	p := RoomToWorld(2, 3, 4, 5, 1)
	if p.X != 2090 || p.Y != 3112.5 {
		t.Errorf("expected (2090,3112.5), got (%v,%v)", p.X, p.Y)
	}
	if p.Floor != 1 {
		t.Errorf("expected floor 1, got %d", p.Floor)
	}
}

func TestRoomToWorldAffine(t *testing.T) {
	for gx := -3; gx <= 3; gx++ {
		for gy := -2; gy <= 2; gy++ {
			for rx := -10; rx <= 10; rx += 5 {
				for rz := -1; rz <= 1; rz++ {
					a := RoomToWorld(gx, gy, rx, 7, rz)
					b := RoomToWorld(gx, gy, rx+1, 7, rz)
					if d := b.X - a.X; d != RoomStep {
						t.Fatalf("zone (%d,%d) room %d: step %v, want %v", gx, gy, rx, d, RoomStep)
					}
					if a.Y != b.Y {
						t.Fatalf("x step moved y: %v -> %v", a.Y, b.Y)
					}
				}
			}
		}
	}
}

func TestZoneSpacing(t *testing.T) {
	for gx1 := -5; gx1 <= 5; gx1++ {
		for gx2 := -5; gx2 <= 5; gx2++ {
			d := ZoneToWorld(gx1, 0).X - ZoneToWorld(gx2, 0).X
			if d < 0 {
				d = -d
			}
			want := float64(abs(gx1-gx2)) * ZoneGridSize
			if d != want {
				t.Errorf("zones %d,%d: distance %v, want %v", gx1, gx2, d, want)
			}
		}
	}
}

func TestCheckCapacity(t *testing.T) {
	if got := ZoneCapacity(); got != 44 {
		t.Fatalf("expected capacity 44, got %d", got)
	}
	reach := ZoneReach()
	if reach != 22 {
		t.Fatalf("expected reach 22, got %d", reach)
	}

	tests := []struct {
		name string
		ext  RoomExtent
		want bool
	}{
		{"empty", RoomExtent{}, true},
		{"edge", RoomExtent{MinX: -reach, MaxX: reach, MinY: -reach, MaxY: reach}, true},
		{"too wide", RoomExtent{MinX: 0, MaxX: reach + 1}, false},
		{"too deep", RoomExtent{MinY: -reach - 1}, false},
		{"full cell one way", RoomExtent{MinX: 0, MaxX: 44}, false},
	}
	for _, tt := range tests {
		if got := CheckCapacity(tt.ext); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAcceptedNeighboursDoNotInterleave(t *testing.T) {
	reach := ZoneReach()
	west := RoomExtent{MinX: -reach, MaxX: reach}
	east := RoomExtent{MinX: -reach, MaxX: reach}
	if !CheckCapacity(west) || !CheckCapacity(east) {
		t.Fatal("expected both extents to pass")
	}

	westEdge := RoomToWorld(0, 0, west.MaxX, 0, 0).X
	eastEdge := RoomToWorld(1, 0, east.MinX, 0, 0).X
	if westEdge >= eastEdge {
		t.Errorf("rooms overlap: west zone reaches %v, east zone starts at %v", westEdge, eastEdge)
	}
}
