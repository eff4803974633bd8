package services

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/models"
)

// Node and line colours used by the world tier
const (
	ColorCurrent     = "#ffff00"
	ColorHighlighted = "#ff00ff"
	ColorSelected    = "#ff6600"
	ColorVisited     = "#00ff00"
	ColorUnvisited   = "#555555"
	ColorMarker      = "#00ff00"
)

// UnvisitedDim is how far unvisited connection lines fade from their
// region colour towards ColorUnvisited.
const UnvisitedDim = 0.6

// Fallback container size when the client does not report one
const (
	DefaultViewWidth  = 1000.0
	DefaultViewHeight = 800.0
)

// MapService turns a view state into the primitives the client should draw
type MapService struct {
	world *WorldService
}

// NewMapService creates a new MapService
func NewMapService(ws *WorldService) *MapService {
	return &MapService{world: ws}
}

// Frame is everything visible for one view state. Only the lists that
// belong to Tier are filled.
type Frame struct {
	Tier        mapper.DetailLevel `json:"tier"`
	Zoom        float64            `json:"zoom"`
	PanX        float64            `json:"pan_x"`
	PanY        float64            `json:"pan_y"`
	Floor       int                `json:"floor"`
	CurrentZone string             `json:"current_zone,omitempty"`
	ViewBox     mapper.BoundingBox `json:"view_box"`
	Nodes       []ZoneNode         `json:"nodes,omitempty"`
	Connections []Connection       `json:"connections,omitempty"`
	Outlines    []ZoneOutline      `json:"outlines,omitempty"`
	Markers     []ZoneMarker       `json:"markers,omitempty"`
	Rooms       []RoomCell         `json:"rooms,omitempty"`
	Culled      int                `json:"culled"`
}

// ZoneNode is a zone drawn as a labelled node at the world tier
type ZoneNode struct {
	ZoneID      string             `json:"zone_id"`
	DisplayName string             `json:"display_name"`
	Center      mapper.Point       `json:"center"`
	Bounds      mapper.BoundingBox `json:"bounds"`
	Color       string             `json:"color"`
	Current     bool               `json:"current,omitempty"`
	Visited     bool               `json:"visited,omitempty"`
	Highlighted bool               `json:"highlighted,omitempty"`
	Selected    bool               `json:"selected,omitempty"`
}

// Connection is a line between two neighbouring zones
type Connection struct {
	From      string       `json:"from"`
	To        string       `json:"to"`
	Direction string       `json:"direction"`
	Start     mapper.Point `json:"start"`
	End       mapper.Point `json:"end"`
	Color     string       `json:"color"`
	Visited   bool         `json:"visited"`
}

// ZoneOutline is a zone's room area drawn as a boundary at the zones tier
type ZoneOutline struct {
	ZoneID string             `json:"zone_id"`
	Bounds mapper.BoundingBox `json:"bounds"`
	Color  string             `json:"color"`
}

// ZoneMarker is the small node drawn on top of zone outlines
type ZoneMarker struct {
	ZoneID string       `json:"zone_id"`
	Center mapper.Point `json:"center"`
	Color  string       `json:"color"`
}

// RoomCell is one room drawn at the rooms tier
type RoomCell struct {
	ZoneID      string           `json:"zone_id"`
	RoomID      int              `json:"room_id"`
	Name        string           `json:"name"`
	Position    mapper.RoomPoint `json:"position"`
	Color       string           `json:"color"`
	Exits       []string         `json:"exits,omitempty"`
	HasNpcs     bool             `json:"has_npcs,omitempty"`
	IsZoneExit  bool             `json:"is_zone_exit,omitempty"`
	ExitToZone  string           `json:"exit_to_zone,omitempty"`
	Highlighted bool             `json:"highlighted,omitempty"`
	Selected    bool             `json:"selected,omitempty"`
}

// frameInput is a view state with its lookups prepared once per frame
type frameInput struct {
	state       models.ViewState
	viewport    mapper.BoundingBox
	zones       []string
	visited     mapset.Set[string]
	highlighted mapset.Set[string] // lowercase zone ids and display names
	rooms       mapset.Set[int]
	mob         string
}

// Camera builds the camera for a view state: centred on the current zone,
// or on the middle of the visible zones when there is none.
func (s *MapService) Camera(vs models.ViewState, zones []string) mapper.Camera {
	cam := mapper.Camera{
		Pan:    mapper.Point{X: vs.PanX, Y: vs.PanY},
		Zoom:   mapper.ClampZoom(vs.Zoom),
		Width:  vs.Width,
		Height: vs.Height,
	}
	if cam.Width <= 0 {
		cam.Width = DefaultViewWidth
	}
	if cam.Height <= 0 {
		cam.Height = DefaultViewHeight
	}

	if zone, ok := s.world.Zone(vs.CurrentZone); ok {
		cam.Center = mapper.ZoneToWorld(zone.GridX, zone.GridY)
		return cam
	}

	if len(zones) == 0 {
		return cam
	}
	first, _ := s.world.Zone(zones[0])
	minX, maxX, minY, maxY := first.GridX, first.GridX, first.GridY, first.GridY
	for _, id := range zones[1:] {
		z, _ := s.world.Zone(id)
		minX, maxX = min(minX, z.GridX), max(maxX, z.GridX)
		minY, maxY = min(minY, z.GridY), max(maxY, z.GridY)
	}
	cam.Center = mapper.Point{
		X: float64(minX+maxX) * mapper.ZoneGridSize / 2,
		Y: float64(minY+maxY) * mapper.ZoneGridSize / 2,
	}
	return cam
}

// View applies the state's zoom action, if any, and plans the frame. The
// frame carries the resulting zoom and pan for the client to keep.
func (s *MapService) View(vs models.ViewState) (*Frame, error) {
	if vs.Action == "" {
		return s.Plan(vs), nil
	}

	cam := s.Camera(vs, s.world.ZoneIDs(vs.Region))
	var next mapper.Camera
	switch vs.Action {
	case models.ActionWheel:
		next = cam.ZoomAt(vs.CursorX, vs.CursorY, mapper.WheelFactor(vs.DeltaY))
	case models.ActionZoomIn:
		next = cam.ZoomAt(cam.Width/2, cam.Height/2, mapper.ZoomIn(cam.Zoom)/cam.Zoom)
	case models.ActionZoomOut:
		next = cam.ZoomAt(cam.Width/2, cam.Height/2, mapper.ZoomOut(cam.Zoom)/cam.Zoom)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, vs.Action)
	}

	vs.Zoom, vs.PanX, vs.PanY = next.Zoom, next.Pan.X, next.Pan.Y
	vs.Action = ""
	return s.Plan(vs), nil
}

// Plan computes the frame for a view state
func (s *MapService) Plan(vs models.ViewState) *Frame {
	vs.Zoom = mapper.ClampZoom(vs.Zoom)
	zones := s.world.ZoneIDs(vs.Region)
	cam := s.Camera(vs, zones)

	in := &frameInput{
		state:       vs,
		viewport:    cam.ViewBox(),
		zones:       zones,
		visited:     mapset.New[string](),
		highlighted: mapset.New[string](),
		rooms:       mapset.New[int](),
		mob:         strings.ToLower(strings.TrimSpace(vs.HighlightedMob)),
	}
	for _, id := range vs.VisitedZones {
		in.visited.Put(id)
	}
	if vs.CurrentZone != "" {
		in.visited.Put(vs.CurrentZone)
	}
	for _, name := range vs.HighlightedZones {
		in.highlighted.Put(strings.ToLower(name))
	}
	for _, id := range vs.HighlightedRooms {
		in.rooms.Put(id)
	}

	frame := &Frame{
		Tier:        mapper.DetailLevelFor(vs.Zoom),
		Zoom:        vs.Zoom,
		PanX:        vs.PanX,
		PanY:        vs.PanY,
		Floor:       vs.Floor,
		CurrentZone: vs.CurrentZone,
		ViewBox:     in.viewport,
	}

	switch frame.Tier {
	case mapper.DetailWorld:
		s.planWorld(in, frame)
	case mapper.DetailZones:
		s.planZones(in, frame)
	case mapper.DetailRooms:
		s.planRooms(in, frame)
	}
	return frame
}

// planWorld emits zone nodes and the connections leaving visible zones
func (s *MapService) planWorld(in *frameInput, frame *Frame) {
	for _, id := range in.zones {
		zone, _ := s.world.Zone(id)
		center := mapper.ZoneToWorld(zone.GridX, zone.GridY)
		box := mapper.NodeBounds(center, mapper.ZoneDisplaySize)
		if !mapper.IsVisible(box, in.viewport) {
			frame.Culled++
			continue
		}

		node := ZoneNode{
			ZoneID:      id,
			DisplayName: zone.DisplayName,
			Center:      center,
			Bounds:      box,
			Current:     id == in.state.CurrentZone,
			Visited:     in.visited.Has(id),
			Highlighted: in.highlighted.Has(strings.ToLower(id)) || in.highlighted.Has(strings.ToLower(zone.DisplayName)),
			Selected:    id == in.state.SelectedZone,
		}
		node.Color = s.nodeColor(zone, node)
		frame.Nodes = append(frame.Nodes, node)

		zone.Exits.Each(func(d models.Direction, target string) {
			dest, ok := s.world.Zone(target)
			if !ok {
				return
			}
			visited := in.visited.Has(id) && in.visited.Has(target)
			conn := Connection{
				From:      id,
				To:        target,
				Direction: d.String(),
				Start:     center,
				End:       mapper.ZoneToWorld(dest.GridX, dest.GridY),
				Color:     mapper.Dim(s.world.RegionColor(zone), ColorUnvisited, UnvisitedDim),
				Visited:   visited,
			}
			if visited {
				conn.Color = ColorVisited
			}
			frame.Connections = append(frame.Connections, conn)
		})
	}
}

func (s *MapService) nodeColor(zone models.ZoneRef, node ZoneNode) string {
	switch {
	case node.Current:
		return ColorCurrent
	case node.Highlighted:
		return ColorHighlighted
	case node.Selected:
		return ColorSelected
	case node.Visited:
		return ColorVisited
	}
	return s.world.RegionColor(zone)
}

// planZones emits zone outlines for zones with rooms, plus small markers
func (s *MapService) planZones(in *frameInput, frame *Frame) {
	for _, id := range in.zones {
		zone, _ := s.world.Zone(id)

		if ext, ok := s.world.Extent(id); ok {
			box := mapper.ZoneWorldBounds(zone.GridX, zone.GridY, ext, mapper.ZoneBoundsPadding)
			if mapper.IsVisible(box, in.viewport) {
				frame.Outlines = append(frame.Outlines, ZoneOutline{
					ZoneID: id,
					Bounds: box,
					Color:  s.world.RegionColor(zone),
				})
			} else {
				frame.Culled++
			}
		}

		center := mapper.ZoneToWorld(zone.GridX, zone.GridY)
		if !mapper.IsVisible(mapper.NodeBounds(center, mapper.ZoneMarkerSize), in.viewport) {
			frame.Culled++
			continue
		}
		frame.Markers = append(frame.Markers, ZoneMarker{ZoneID: id, Center: center, Color: ColorMarker})
	}
}

// planRooms emits the current floor's rooms of every zone in view
func (s *MapService) planRooms(in *frameInput, frame *Frame) {
	for _, id := range in.zones {
		ext, ok := s.world.Extent(id)
		if !ok {
			continue
		}
		zone, _ := s.world.Zone(id)
		box := mapper.ZoneWorldBounds(zone.GridX, zone.GridY, ext, mapper.ZoneBoundsPadding)
		if !mapper.IsVisible(box, in.viewport) {
			frame.Culled++
			continue
		}

		for _, room := range mapper.FilterByFloor(s.world.Rooms(id), in.state.Floor) {
			pos := mapper.RoomToWorld(zone.GridX, zone.GridY, room.X, room.Y, room.Z)
			if !mapper.IsVisible(mapper.RoomCellBounds(pos), in.viewport) {
				frame.Culled++
				continue
			}
			frame.Rooms = append(frame.Rooms, s.roomCell(in, id, room, pos))
		}
	}
}

func (s *MapService) roomCell(in *frameInput, zoneID string, room models.RoomRef, pos mapper.RoomPoint) RoomCell {
	cell := RoomCell{
		ZoneID:     zoneID,
		RoomID:     room.ID,
		Name:       room.Name,
		Position:   pos,
		Color:      mapper.WorldTerrainColor(room.TerrainTag),
		HasNpcs:    room.HasNpcs(),
		IsZoneExit: room.IsZoneExit,
		ExitToZone: room.ExitToZone,
		Selected:   room.ID == in.state.SelectedRoom && zoneID == in.state.CurrentZone,
	}
	for _, d := range room.Exits.Directions() {
		cell.Exits = append(cell.Exits, d.String())
	}

	if zoneID == in.state.CurrentZone && in.rooms.Has(room.ID) {
		cell.Highlighted = true
	}
	if in.mob != "" {
		for _, npc := range room.Npcs {
			if strings.ToLower(npc.Name) == in.mob {
				cell.Highlighted = true
				break
			}
		}
	}
	return cell
}
