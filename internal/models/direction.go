package models

import "strings"

// Direction is a compass or vertical exit direction. The set is closed.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
	Northeast
	Northwest
	Southeast
	Southwest

	DirectionCount
)

var directionNames = [DirectionCount]string{
	"north", "south", "east", "west", "up", "down",
	"northeast", "northwest", "southeast", "southwest",
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "unknown"
	}
	return directionNames[d]
}

// DirectionFromName accepts only the full direction names used as keys in
// the data files, ignoring case.
func DirectionFromName(name string) (Direction, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for d, n := range directionNames {
		if n == lower {
			return Direction(d), true
		}
	}
	return 0, false
}

// ParseDirection accepts direction names, their short forms and the
// w/a/s/d and arrow-key aliases used by the viewer. It is for user input
// only: "w" means north here.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "w", "arrowup":
		return North, true
	case "south", "s", "arrowdown":
		return South, true
	case "east", "e", "d", "arrowright":
		return East, true
	case "west", "a", "arrowleft":
		return West, true
	case "up", "u", "pageup":
		return Up, true
	case "down", "pagedown":
		return Down, true
	case "northeast", "ne":
		return Northeast, true
	case "northwest", "nw":
		return Northwest, true
	case "southeast", "se":
		return Southeast, true
	case "southwest", "sw":
		return Southwest, true
	}
	return 0, false
}
