// Package mapper maps zone and room coordinates onto one world pixel grid
// and decides what the viewer should draw for a given pan and zoom.
//
// Every zone owns a ZoneGridSize x ZoneGridSize cell of the world grid.
// Rooms are placed relative to their zone's origin, spread by RoomScale.
// Nothing in this package holds state.
package mapper

import "math"

const (
	ZoneGridSize    = 1000.0 // world pixels between zone cells
	ZoneDisplaySize = 180.0  // half size of a zone node at world level
	RoomGridSize    = 15.0   // pixels per room when fully zoomed
	RoomScale       = 1.5    // spreads room cells apart

	MinZoom = 0.3
	MaxZoom = 20.0

	WorldZoomThreshold = 2.0 // below: zone nodes
	ZoneZoomThreshold  = 5.0 // below: zone outlines, above: rooms

	ZoneBoundsPadding = 50.0
	ZoneMarkerSize    = 50.0
)

// RoomStep is the world distance between two adjacent room cells.
const RoomStep = RoomGridSize * RoomScale

// typed copies for runtime arithmetic that must not fold into constants
var (
	zoneGridSize float64 = ZoneGridSize
	roomStep     float64 = RoomStep
)

// Point is a position in world pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RoomPoint is a room's world position together with its floor.
type RoomPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Floor int     `json:"floor"`
}

// ZoneToWorld converts zone grid coordinates to the zone's world origin.
func ZoneToWorld(gridX, gridY int) Point {
	return Point{
		X: float64(gridX) * ZoneGridSize,
		Y: float64(gridY) * ZoneGridSize,
	}
}

// RoomToWorld converts room coordinates inside a zone to world coordinates.
// The floor is passed through unchanged.
func RoomToWorld(zoneGridX, zoneGridY, roomX, roomY, roomZ int) RoomPoint {
	origin := ZoneToWorld(zoneGridX, zoneGridY)
	return RoomPoint{
		X:     origin.X + float64(roomX)*RoomStep,
		Y:     origin.Y + float64(roomY)*RoomStep,
		Floor: roomZ,
	}
}

// ZoneCapacity is the number of room cells that fit across one zone cell
// along one axis: floor(ZoneGridSize / RoomStep).
func ZoneCapacity() int {
	return int(math.Floor(zoneGridSize / roomStep))
}

// ZoneReach is how many room cells a zone may extend from its origin in
// any direction while staying inside the cell centred on that origin.
func ZoneReach() int {
	return ZoneCapacity() / 2
}

// CheckCapacity reports whether a zone's room extent fits inside the grid
// cell centred on the zone origin, so neighbouring zones cannot interleave.
func CheckCapacity(extent RoomExtent) bool {
	reach := ZoneReach()
	return abs(extent.MinX) <= reach && abs(extent.MaxX) <= reach &&
		abs(extent.MinY) <= reach && abs(extent.MaxY) <= reach
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
