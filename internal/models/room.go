package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RoomData is the per-zone room table (WorldData.json).
type RoomData struct {
	Zones map[string]ZoneRooms `json:"Zones"`
}

// ZoneRooms is one zone's rooms keyed by room id.
type ZoneRooms struct {
	ZoneName   string             `json:"ZoneName"`
	TotalRooms int                `json:"TotalRooms"`
	Rooms      map[string]RoomRef `json:"Rooms"`
}

// NpcRef is an NPC spawn attached to a room.
type NpcRef struct {
	Name        string  `json:"NpcName"`
	RespawnRate float64 `json:"RespawnRate"`
}

// Exit is a room exit: absent, present, or present with a known target room.
type Exit struct {
	Present bool
	Target  int // 0 when unknown
}

// UnmarshalJSON accepts null, booleans, room ids and numeric strings.
func (e *Exit) UnmarshalJSON(data []byte) error {
	*e = Exit{}
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		return nil
	case bytes.Equal(data, []byte("true")):
		e.Present = true
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("exit: %w", err)
		}
		if s == "" {
			return nil
		}
		e.Present = true
		if id, err := strconv.Atoi(s); err == nil {
			e.Target = id
		}
		return nil
	}

	var id float64
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("exit: %w", err)
	}
	if id > 0 {
		e.Present = true
		e.Target = int(id)
	}
	return nil
}

// MarshalJSON encodes the target id, true, or null.
func (e Exit) MarshalJSON() ([]byte, error) {
	switch {
	case !e.Present:
		return []byte("null"), nil
	case e.Target != 0:
		return []byte(strconv.Itoa(e.Target)), nil
	}
	return []byte("true"), nil
}

// RoomExits holds one exit slot per direction.
type RoomExits [DirectionCount]Exit

// Has reports whether the room has an exit in direction d.
func (r RoomExits) Has(d Direction) bool {
	return d >= 0 && d < DirectionCount && r[d].Present
}

// Directions returns the directions with an exit, in direction order.
func (r RoomExits) Directions() []Direction {
	dirs := make([]Direction, 0, DirectionCount)
	for d := Direction(0); d < DirectionCount; d++ {
		if r[d].Present {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// RoomRef is one room of a zone. (X, Y, Z) is unique within its zone;
// a missing Z decodes as the ground floor.
type RoomRef struct {
	ID          int
	Name        string
	Description string
	X, Y, Z     int
	TerrainTag  string
	Exits       RoomExits
	IsZoneExit  bool
	ExitToZone  string
	Npcs        []NpcRef
	Connected   []int
}

type roomJSON struct {
	RoomID         int      `json:"RoomId"`
	Name           string   `json:"Name"`
	Description    string   `json:"Description,omitempty"`
	X              int      `json:"X"`
	Y              int      `json:"Y"`
	Z              int      `json:"Z"`
	TerrainColor   string   `json:"TerrainColor"`
	ExitNorth      Exit     `json:"ExitNorth"`
	ExitSouth      Exit     `json:"ExitSouth"`
	ExitEast       Exit     `json:"ExitEast"`
	ExitWest       Exit     `json:"ExitWest"`
	ExitUp         Exit     `json:"ExitUp"`
	ExitDown       Exit     `json:"ExitDown"`
	ExitNortheast  Exit     `json:"ExitNortheast"`
	ExitNorthwest  Exit     `json:"ExitNorthwest"`
	ExitSoutheast  Exit     `json:"ExitSoutheast"`
	ExitSouthwest  Exit     `json:"ExitSouthwest"`
	IsZoneExit     bool     `json:"IsZoneExit"`
	ExitToZone     string   `json:"ExitToZone,omitempty"`
	Npcs           []NpcRef `json:"Npcs"`
	ConnectedRooms []int    `json:"ConnectedRooms,omitempty"`
}

// UnmarshalJSON decodes the flat ExitNorth..ExitDown field layout.
func (r *RoomRef) UnmarshalJSON(data []byte) error {
	var raw roomJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = RoomRef{
		ID:          raw.RoomID,
		Name:        raw.Name,
		Description: raw.Description,
		X:           raw.X,
		Y:           raw.Y,
		Z:           raw.Z,
		TerrainTag:  raw.TerrainColor,
		IsZoneExit:  raw.IsZoneExit,
		ExitToZone:  raw.ExitToZone,
		Npcs:        raw.Npcs,
		Connected:   raw.ConnectedRooms,
	}
	r.Exits[North] = raw.ExitNorth
	r.Exits[South] = raw.ExitSouth
	r.Exits[East] = raw.ExitEast
	r.Exits[West] = raw.ExitWest
	r.Exits[Up] = raw.ExitUp
	r.Exits[Down] = raw.ExitDown
	r.Exits[Northeast] = raw.ExitNortheast
	r.Exits[Northwest] = raw.ExitNorthwest
	r.Exits[Southeast] = raw.ExitSoutheast
	r.Exits[Southwest] = raw.ExitSouthwest
	return nil
}

// MarshalJSON writes the room back in the data file layout.
func (r RoomRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(roomJSON{
		RoomID:         r.ID,
		Name:           r.Name,
		Description:    r.Description,
		X:              r.X,
		Y:              r.Y,
		Z:              r.Z,
		TerrainColor:   r.TerrainTag,
		ExitNorth:      r.Exits[North],
		ExitSouth:      r.Exits[South],
		ExitEast:       r.Exits[East],
		ExitWest:       r.Exits[West],
		ExitUp:         r.Exits[Up],
		ExitDown:       r.Exits[Down],
		ExitNortheast:  r.Exits[Northeast],
		ExitNorthwest:  r.Exits[Northwest],
		ExitSoutheast:  r.Exits[Southeast],
		ExitSouthwest:  r.Exits[Southwest],
		IsZoneExit:     r.IsZoneExit,
		ExitToZone:     r.ExitToZone,
		Npcs:           r.Npcs,
		ConnectedRooms: r.Connected,
	})
}

// HasNpcs reports whether any NPC spawns in the room.
func (r RoomRef) HasNpcs() bool {
	return len(r.Npcs) > 0
}
