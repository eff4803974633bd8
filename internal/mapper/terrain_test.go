package mapper

import "testing"

func TestWorldTerrainColor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", "#555555"},
		{"DarkGreen", "#006400"},
		{"darkgreen", "#006400"},
		{"GREY70", "#B3B3B3"},
		{"mossystone", "#708090"},
		{"zzz", "#555555"},
	}
	for _, tt := range tests {
		if got := WorldTerrainColor(tt.tag); got != tt.want {
			t.Errorf("WorldTerrainColor(%q) = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

func TestRoomTerrainColor(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"", "#999999"},
		{"LtGreen", "#00BB00"},
		{"dkblue", "#000088"},
		// substring falls back in table order: "green" comes before "brown"
		{"greenbrown", "#00BB00"},
		// the tag is contained in a key
		{"lusc", "#CC00CC"},
		{"qqq", "#999999"},
	}
	for _, tt := range tests {
		if got := RoomTerrainColor(tt.tag); got != tt.want {
			t.Errorf("RoomTerrainColor(%q) = %s, want %s", tt.tag, got, tt.want)
		}
	}
}

func TestTerrainResolversAreDistinct(t *testing.T) {
	if WorldTerrainColor("green") == RoomTerrainColor("green") {
		t.Error("expected the two palettes to differ for green")
	}
}

func TestTerrainTotal(t *testing.T) {
	inputs := []string{"", " ", "\x00", "ÄÖÜ", "grey", "a", "unknown-terrain-tag"}
	for _, in := range inputs {
		if WorldTerrainColor(in) == "" || RoomTerrainColor(in) == "" {
			t.Errorf("empty colour for %q", in)
		}
	}
}

func TestPalettesValidate(t *testing.T) {
	for _, p := range []*TerrainPalette{WorldTerrain, RoomTerrain} {
		if err := p.Validate(); err != nil {
			t.Error(err)
		}
	}
	bad := NewTerrainPalette("bad", "#zzz", nil)
	if bad.Validate() == nil {
		t.Error("expected invalid default to fail")
	}
}

func TestDim(t *testing.T) {
	tests := []struct {
		hex    string
		amount float64
		want   string
	}{
		{"#3366cc", 0, "#3366cc"},
		{"#3366CC", 1, "#555555"},
		{"#000000", 0.2, "#111111"},
		{"#ffffff", 2, "#555555"},
		{"not a colour", 0.3, "#555555"},
	}
	for _, tt := range tests {
		if got := Dim(tt.hex, "#555555", tt.amount); got != tt.want {
			t.Errorf("Dim(%q, %v) = %s, want %s", tt.hex, tt.amount, got, tt.want)
		}
	}
}
