package mapper

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// TerrainEntry maps one lowercase terrain tag to a display colour.
type TerrainEntry struct {
	Tag   string
	Color string
}

// TerrainPalette resolves terrain tags to colours. Entries are checked in
// order during substring matching, so order matters.
type TerrainPalette struct {
	Name    string
	Default string
	entries []TerrainEntry
	exact   map[string]string
}

// NewTerrainPalette builds a palette from ordered entries.
func NewTerrainPalette(name, fallback string, entries []TerrainEntry) *TerrainPalette {
	p := &TerrainPalette{
		Name:    name,
		Default: fallback,
		entries: entries,
		exact:   make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		key := strings.ToLower(e.Tag)
		if _, dup := p.exact[key]; !dup {
			p.exact[key] = e.Color
		}
	}
	return p
}

// Resolve returns the colour for a tag: exact match first, then the first
// entry whose tag contains or is contained in the given one, then Default.
func (p *TerrainPalette) Resolve(tag string) string {
	if tag == "" {
		return p.Default
	}

	lower := strings.ToLower(tag)
	if c, ok := p.exact[lower]; ok {
		return c
	}
	for _, e := range p.entries {
		key := strings.ToLower(e.Tag)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return e.Color
		}
	}
	return p.Default
}

// Entries returns a copy of the palette's ordered entries.
func (p *TerrainPalette) Entries() []TerrainEntry {
	out := make([]TerrainEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Validate checks that every colour in the palette is a parseable hex colour.
func (p *TerrainPalette) Validate() error {
	if _, err := colorful.Hex(p.Default); err != nil {
		return fmt.Errorf("palette %s: default %q: %w", p.Name, p.Default, err)
	}
	for _, e := range p.entries {
		if _, err := colorful.Hex(e.Color); err != nil {
			return fmt.Errorf("palette %s: tag %q: %w", p.Name, e.Tag, err)
		}
	}
	return nil
}

// WorldTerrain colours rooms drawn on the unified world map.
var WorldTerrain = NewTerrainPalette("world", "#555555", []TerrainEntry{
	// browns: caves, underground
	{"brown", "#8B4513"},
	{"darkbrown", "#654321"},

	// greys: stone, paths, cities
	{"grey", "#808080"},
	{"gray", "#808080"},
	{"grey40", "#666666"},
	{"grey50", "#808080"},
	{"grey60", "#999999"},
	{"grey70", "#B3B3B3"},
	{"grey80", "#CCCCCC"},
	{"darkgrey", "#505050"},
	{"darkgray", "#505050"},
	{"lightgrey", "#D3D3D3"},
	{"lightgray", "#D3D3D3"},

	// greens: forests, grass
	{"green", "#228B22"},
	{"darkgreen", "#006400"},
	{"lightgreen", "#90EE90"},
	{"forestgreen", "#228B22"},
	{"lawngreen", "#7CFC00"},

	// blues: water
	{"blue", "#4169E1"},
	{"darkblue", "#00008B"},
	{"lightblue", "#87CEEB"},
	{"skyblue", "#87CEEB"},
	{"navyblue", "#000080"},
	{"cyan", "#00CED1"},
	{"aqua", "#00FFFF"},

	// yellows: desert, sand
	{"yellow", "#FFD700"},
	{"gold", "#FFD700"},
	{"lightyellow", "#FFFFE0"},
	{"sand", "#F4A460"},
	{"tan", "#D2B48C"},

	// reds: lava, fire
	{"red", "#DC143C"},
	{"darkred", "#8B0000"},
	{"crimson", "#DC143C"},
	{"firebrick", "#B22222"},
	{"orange", "#FF8C00"},
	{"darkorange", "#FF8C00"},

	// purples
	{"purple", "#8B008B"},
	{"violet", "#EE82EE"},
	{"magenta", "#FF00FF"},
	{"darkmagenta", "#8B008B"},

	// whites: snow, frost
	{"white", "#F0F0F0"},
	{"snow", "#FFFAFA"},
	{"ivory", "#FFFFF0"},

	{"black", "#1a1a1a"},
	{"pink", "#FFC0CB"},

	{"marble", "#C0C0C0"},
	{"granite", "#808080"},
	{"grass", "#228B22"},
	{"dirt", "#8B4513"},
	{"mud", "#654321"},
	{"stone", "#708090"},
	{"rock", "#696969"},
	{"ice", "#B0E0E6"},
	{"lava", "#FF4500"},
	{"water", "#4169E1"},
})

// RoomTerrain matches the MUD client's own colours and is used by the
// detailed floor plan.
var RoomTerrain = NewTerrainPalette("room", "#999999", []TerrainEntry{
	{"ltgreen", "#00BB00"},
	{"wetgreen", "#00BB00"},
	{"green", "#00BB00"},

	{"brown", "#CC6600"},
	{"orange", "#CC6600"},
	{"dkbrown", "#996633"},

	{"grey40", "#666666"},
	{"grey60", "#999999"},
	{"grey70", "#B3B3B3"},
	{"gray", "#808080"},
	{"grey", "#808080"},

	{"blue", "#0000CC"},
	{"ltblue", "#6666FF"},
	{"dkblue", "#000088"},

	{"red", "#FF0000"},
	{"dkred", "#CC0000"},

	{"midnight", "#000033"},
	{"lusciouspurp", "#CC00CC"},
	{"purple", "#9933CC"},
	{"yellow", "#FFFF00"},
	{"white", "#FFFFFF"},
	{"black", "#000000"},
	{"cyan", "#00FFFF"},
	{"pink", "#FF99CC"},
})

// WorldTerrainColor resolves a tag against the world map palette.
func WorldTerrainColor(tag string) string {
	return WorldTerrain.Resolve(tag)
}

// RoomTerrainColor resolves a tag against the floor plan palette.
func RoomTerrainColor(tag string) string {
	return RoomTerrain.Resolve(tag)
}

// Dim blends a hex colour towards target by amount in [0, 1]. An
// unparseable colour yields target.
func Dim(hex, target string, amount float64) string {
	to, err := colorful.Hex(target)
	if err != nil {
		return target
	}
	from, err := colorful.Hex(hex)
	if err != nil {
		return to.Hex()
	}
	amount = math.Max(0, math.Min(1, amount))
	return from.BlendRgb(to, amount).Hex()
}
