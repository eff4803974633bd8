package models

import (
	"encoding/json"
	"fmt"
)

// WorldGraph is the zone-level world map (complete_world_map_data.json).
type WorldGraph struct {
	Locations map[string]ZoneRef `json:"locations"`
	Regions   map[string]Region  `json:"regions"`
}

// Region groups zones and gives them a shared colour.
type Region struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ZoneRef is one zone's place on the world grid.
type ZoneRef struct {
	GridX       int       `json:"gridX"`
	GridY       int       `json:"gridY"`
	Region      string    `json:"region"`
	DisplayName string    `json:"displayName"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Exits       ZoneExits `json:"exits"`
}

// ZoneExits holds the neighbouring zone id per direction; empty means none.
type ZoneExits [DirectionCount]string

// Get returns the zone id in direction d, if any.
func (e ZoneExits) Get(d Direction) (string, bool) {
	if d < 0 || d >= DirectionCount || e[d] == "" {
		return "", false
	}
	return e[d], true
}

// Each calls fn for every present exit in direction order.
func (e ZoneExits) Each(fn func(d Direction, zoneID string)) {
	for d := Direction(0); d < DirectionCount; d++ {
		if e[d] != "" {
			fn(d, e[d])
		}
	}
}

// UnmarshalJSON decodes the {"north": "zone_id", ...} object form.
func (e *ZoneExits) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("zone exits: %w", err)
	}

	*e = ZoneExits{}
	for name, target := range raw {
		d, ok := DirectionFromName(name)
		if !ok {
			return fmt.Errorf("zone exits: unknown direction %q", name)
		}
		e[d] = target
	}
	return nil
}

// MarshalJSON encodes present exits back into the object form.
func (e ZoneExits) MarshalJSON() ([]byte, error) {
	out := make(map[string]string)
	e.Each(func(d Direction, zoneID string) {
		out[d.String()] = zoneID
	})
	return json.Marshal(out)
}
