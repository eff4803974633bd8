package mapper

import "mudatlas.dev/internal/models"

// RoomExtent is the integer bounding box of a set of room coordinates.
type RoomExtent struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// Contains reports whether other lies entirely inside e.
func (e RoomExtent) Contains(other RoomExtent) bool {
	return e.MinX <= other.MinX && e.MaxX >= other.MaxX &&
		e.MinY <= other.MinY && e.MaxY >= other.MaxY
}

// BoundingBox is a rectangle in a single pixel space, world or viewport.
// CenterX and CenterY hold the anchor of zone and node boxes, which may be
// the world origin itself; other boxes leave them zero.
type BoundingBox struct {
	Left    float64 `json:"left"`
	Right   float64 `json:"right"`
	Top     float64 `json:"top"`
	Bottom  float64 `json:"bottom"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// Width returns the horizontal size of the box.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical size of the box.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// RoomBounds returns the bounding box of the rooms' x/y coordinates.
// An empty set yields the zero extent.
func RoomBounds(rooms []models.RoomRef) RoomExtent {
	if len(rooms) == 0 {
		return RoomExtent{}
	}

	ext := RoomExtent{
		MinX: rooms[0].X, MaxX: rooms[0].X,
		MinY: rooms[0].Y, MaxY: rooms[0].Y,
	}
	for _, room := range rooms[1:] {
		ext.MinX = min(ext.MinX, room.X)
		ext.MaxX = max(ext.MaxX, room.X)
		ext.MinY = min(ext.MinY, room.Y)
		ext.MaxY = max(ext.MaxY, room.Y)
	}
	return ext
}

// ZoneWorldBounds places a room extent in world space around the zone's
// origin and grows it by padding on every side. The extent is widened by
// one cell each way so edge rooms sit inside the outline.
func ZoneWorldBounds(zoneGridX, zoneGridY int, extent RoomExtent, padding float64) BoundingBox {
	origin := ZoneToWorld(zoneGridX, zoneGridY)

	width := float64(extent.MaxX-extent.MinX+2) * RoomStep
	height := float64(extent.MaxY-extent.MinY+2) * RoomStep
	left := origin.X + float64(extent.MinX)*RoomStep - padding
	top := origin.Y + float64(extent.MinY)*RoomStep - padding

	return BoundingBox{
		Left:    left,
		Right:   left + width + padding*2,
		Top:     top,
		Bottom:  top + height + padding*2,
		CenterX: origin.X,
		CenterY: origin.Y,
	}
}

// NodeBounds returns the square of the given half size around a point.
func NodeBounds(center Point, halfSize float64) BoundingBox {
	return BoundingBox{
		Left:    center.X - halfSize,
		Right:   center.X + halfSize,
		Top:     center.Y - halfSize,
		Bottom:  center.Y + halfSize,
		CenterX: center.X,
		CenterY: center.Y,
	}
}

// RoomCellBounds returns the square a room cell covers when drawn.
func RoomCellBounds(p RoomPoint) BoundingBox {
	half := RoomGridSize / 2
	return BoundingBox{
		Left:   p.X - half,
		Right:  p.X + half,
		Top:    p.Y - half,
		Bottom: p.Y + half,
	}
}
