package services

import (
	"errors"
	"reflect"
	"testing"

	"mudatlas.dev/internal/models"
)

func TestGetWorldResponse(t *testing.T) {
	_, ws := newTestWorld(t)
	resp := ws.GetWorldResponse()
	if len(resp.Zones) != 4 || len(resp.Regions) != 3 {
		t.Errorf("unexpected manifest sizes: %d zones, %d regions", len(resp.Zones), len(resp.Regions))
	}
	if resp.Constants.ZoneGridSize != 1000 || resp.Constants.ZoneZoomThreshold != 5 {
		t.Errorf("unexpected constants %+v", resp.Constants)
	}
}

func TestGetZone(t *testing.T) {
	_, ws := newTestWorld(t)

	z, err := ws.GetZone("myronmet")
	if err != nil {
		t.Fatal(err)
	}
	if z.TotalRooms != 4 || z.ExitRooms != 1 || z.RegionName != "Central Lands" {
		t.Errorf("unexpected zone detail %+v", z)
	}
	if !reflect.DeepEqual(z.Floors, []int{1, 0}) {
		t.Errorf("unexpected floors %v", z.Floors)
	}
	if z.Bounds.CenterX != 0 || z.Bounds.Left != -95 {
		t.Errorf("unexpected bounds %+v", z.Bounds)
	}

	if _, err := ws.GetZone("atlantis"); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestGetFloor(t *testing.T) {
	_, ws := newTestWorld(t)

	f, err := ws.GetFloor("ancient_caverns", -1)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Rooms) != 2 || f.Rooms[0].Room.ID != 10 {
		t.Fatalf("unexpected rooms %+v", f.Rooms)
	}
	// the floor plan uses the MUD client palette
	if f.Rooms[0].Color != "#CC6600" {
		t.Errorf("expected room palette colour, got %s", f.Rooms[0].Color)
	}

	empty, err := ws.GetFloor("ancient_caverns", 99)
	if err != nil || len(empty.Rooms) != 0 {
		t.Errorf("expected empty floor, got %+v, %v", empty, err)
	}

	if _, err := ws.GetFloor("atlantis", 0); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestGetFloors(t *testing.T) {
	ds, ws := newTestWorld(t)

	floors, err := ws.GetFloors("ancient_caverns")
	if err != nil || !reflect.DeepEqual(floors, []int{0, -1}) {
		t.Errorf("unexpected floors %v, %v", floors, err)
	}

	// a zone only the room table knows is served like GetFloor serves it
	ds.Zones["hidden_vault"] = models.ZoneRooms{ZoneName: "Hidden Vault"}
	if floors, err := ws.GetFloors("hidden_vault"); err != nil || !reflect.DeepEqual(floors, []int{0}) {
		t.Errorf("expected the ground floor only, got %v, %v", floors, err)
	}
	if _, err := ws.GetFloor("hidden_vault", 0); err != nil {
		t.Errorf("GetFloor disagrees: %v", err)
	}

	if _, err := ws.GetFloors("atlantis"); !errors.Is(err, ErrZoneNotFound) {
		t.Errorf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestZoneIDs(t *testing.T) {
	_, ws := newTestWorld(t)
	if got := ws.ZoneIDs("central"); !reflect.DeepEqual(got, []string{"myronmet", "new_myronmet"}) {
		t.Errorf("unexpected central zones %v", got)
	}
	if got := ws.ZoneIDs("all"); len(got) != 4 {
		t.Errorf("expected all zones, got %v", got)
	}
}

func TestFindZoneByLocationName(t *testing.T) {
	_, ws := newTestWorld(t)

	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"ancient_caverns", "ancient_caverns", true},
		{"MYRONMET", "myronmet", true},
		{"the ancient caverns", "ancient_caverns", true},
		{"new myronmet", "new_myronmet", true},
		{"Far", "far_isle", true},
		{"caverns", "ancient_caverns", true},
		{"", "", false},
		{"atlantis", "", false},
	}
	for _, tt := range tests {
		got, ok := ws.FindZoneByLocationName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FindZoneByLocationName(%q) = %q,%v; want %q,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
