package models

import (
	"encoding/json"
	"testing"
)

func TestParseDirectionAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"north", North},
		{"w", North},
		{"ArrowUp", North},
		{"a", West},
		{"d", East},
		{"s", South},
		{" SW ", Southwest},
		{"pagedown", Down},
	}
	for _, tt := range tests {
		got, ok := ParseDirection(tt.in)
		if !ok || got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected sideways to be rejected")
	}
}

func TestDirectionFromName(t *testing.T) {
	for d := Direction(0); d < DirectionCount; d++ {
		got, ok := DirectionFromName(d.String())
		if !ok || got != d {
			t.Errorf("DirectionFromName(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if got, ok := DirectionFromName("West"); !ok || got != West {
		t.Errorf("expected case-insensitive west, got %v %v", got, ok)
	}
	for _, alias := range []string{"w", "d", "a", "n", "arrowup"} {
		if _, ok := DirectionFromName(alias); ok {
			t.Errorf("expected %q to be rejected", alias)
		}
	}
}

func TestZoneExitsRejectKeyAliases(t *testing.T) {
	var exits ZoneExits
	if err := json.Unmarshal([]byte(`{"west": "myronmet", "down": "ancient_caverns"}`), &exits); err != nil {
		t.Fatal(err)
	}
	if id, ok := exits.Get(West); !ok || id != "myronmet" {
		t.Errorf("expected west exit, got %q", id)
	}
	if id, ok := exits.Get(Down); !ok || id != "ancient_caverns" {
		t.Errorf("expected down exit, got %q", id)
	}
	if _, ok := exits.Get(North); ok {
		t.Error("west key must not land on north")
	}

	if err := json.Unmarshal([]byte(`{"w": "myronmet"}`), &exits); err == nil {
		t.Error("expected the w key to be rejected")
	}
}
