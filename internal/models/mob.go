package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MobRecord is one entry of the mob roster (Mobs.json).
type MobRecord struct {
	ID         int     `json:"Id"`
	Name       string  `json:"Name"`
	Level      int     `json:"Level"`
	Type       MobType `json:"Type"`
	Tier       string  `json:"Tier"`
	IsBoss     bool    `json:"IsBoss"`
	Faction    string  `json:"Faction"`
	Location   string  `json:"Location"` // comma-separated zone names
	Difficulty int     `json:"Difficulty"`
	Health     int     `json:"Health,omitempty"`
	Damage     string  `json:"Damage,omitempty"`
	Experience float64 `json:"Experience,omitempty"`
}

// Locations splits Location into trimmed, non-empty zone names.
func (m MobRecord) Locations() []string {
	if m.Location == "" {
		return nil
	}
	parts := strings.Split(m.Location, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MobType is a roster type tag. Some rosters store plain hostile mobs as
// the number 0, so numbers decode to their decimal string.
type MobType string

// UnmarshalJSON accepts a string, a number or null.
func (t *MobType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("mob type: %w", err)
		}
		*t = MobType(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("mob type: %w", err)
	}
	*t = MobType(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}
