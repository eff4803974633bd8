package mapper

import "testing"

func TestDetailLevelFor(t *testing.T) {
	tests := []struct {
		zoom float64
		want DetailLevel
	}{
		{0.3, DetailWorld},
		{1.0, DetailWorld},
		{1.999, DetailWorld},
		{2.0, DetailZones},
		{4.99, DetailZones},
		{5.0, DetailRooms},
		{20, DetailRooms},
	}
	for _, tt := range tests {
		if got := DetailLevelFor(tt.zoom); got != tt.want {
			t.Errorf("zoom %v: got %s, want %s", tt.zoom, got, tt.want)
		}
	}
}

func TestDetailLevelMonotonic(t *testing.T) {
	prev := DetailLevelFor(MinZoom)
	for z := MinZoom; z <= MaxZoom; z += 0.05 {
		cur := DetailLevelFor(z)
		if cur < prev {
			t.Fatalf("tier dropped from %s to %s at zoom %v", prev, cur, z)
		}
		if DetailLevelFor(z) != cur {
			t.Fatalf("zoom %v gave different tiers", z)
		}
		prev = cur
	}
}

func TestDetailLevelString(t *testing.T) {
	if DetailWorld.String() != "world" || DetailZones.String() != "zones" || DetailRooms.String() != "rooms" {
		t.Error("unexpected tier names")
	}

	var d DetailLevel
	if err := d.UnmarshalText([]byte("zones")); err != nil || d != DetailZones {
		t.Errorf("UnmarshalText(zones) = %v, %v", d, err)
	}
	if err := d.UnmarshalText([]byte("galaxy")); err == nil {
		t.Error("expected unknown tier to fail")
	}
}

func TestZoomSteps(t *testing.T) {
	if got := ZoomIn(MaxZoom); got != MaxZoom {
		t.Errorf("zoom in past max: %v", got)
	}
	if got := ZoomOut(MinZoom); got != MinZoom {
		t.Errorf("zoom out past min: %v", got)
	}
	if got := ZoomIn(1); got != 1.3 {
		t.Errorf("expected 1.3, got %v", got)
	}
}
