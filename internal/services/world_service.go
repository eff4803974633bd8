package services

import (
	"fmt"
	"sort"
	"strings"

	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/models"
)

// WorldService answers zone and room queries over the loaded dataset
type WorldService struct {
	data *loader.Dataset
}

// NewWorldService creates a new WorldService
func NewWorldService(ds *loader.Dataset) *WorldService {
	return &WorldService{data: ds}
}

// Constants is the fixed geometry the client needs to draw what we send
type Constants struct {
	ZoneGridSize       float64 `json:"zone_grid_size"`
	ZoneDisplaySize    float64 `json:"zone_display_size"`
	RoomGridSize       float64 `json:"room_grid_size"`
	RoomScale          float64 `json:"room_scale"`
	MinZoom            float64 `json:"min_zoom"`
	MaxZoom            float64 `json:"max_zoom"`
	WorldZoomThreshold float64 `json:"world_zoom_threshold"`
	ZoneZoomThreshold  float64 `json:"zone_zoom_threshold"`
}

// WorldResponse is the world manifest sent to the client
type WorldResponse struct {
	Constants Constants                 `json:"constants"`
	Zones     map[string]models.ZoneRef `json:"zones"`
	Regions   map[string]models.Region  `json:"regions"`
	Overflow  []loader.CapacityIssue    `json:"overflow,omitempty"`
}

// ZoneDetail is one zone with its room summary
type ZoneDetail struct {
	ID         string             `json:"id"`
	Zone       models.ZoneRef     `json:"zone"`
	RegionName string             `json:"region_name,omitempty"`
	RoomName   string             `json:"room_name,omitempty"`
	TotalRooms int                `json:"total_rooms"`
	Floors     []int              `json:"floors"`
	Extent     mapper.RoomExtent  `json:"extent"`
	Bounds     mapper.BoundingBox `json:"bounds"`
	ExitRooms  int                `json:"exit_rooms"`
}

// FloorResponse is the floor plan of one zone floor
type FloorResponse struct {
	ZoneID string      `json:"zone_id"`
	Floor  int         `json:"floor"`
	Floors []int       `json:"floors"`
	Rooms  []FloorRoom `json:"rooms"`
}

// FloorRoom is a room as drawn on the detailed floor plan
type FloorRoom struct {
	Room  models.RoomRef `json:"room"`
	Color string         `json:"color"`
}

// GetWorldResponse returns the world manifest for the client
func (s *WorldService) GetWorldResponse() *WorldResponse {
	return &WorldResponse{
		Constants: Constants{
			ZoneGridSize:       mapper.ZoneGridSize,
			ZoneDisplaySize:    mapper.ZoneDisplaySize,
			RoomGridSize:       mapper.RoomGridSize,
			RoomScale:          mapper.RoomScale,
			MinZoom:            mapper.MinZoom,
			MaxZoom:            mapper.MaxZoom,
			WorldZoomThreshold: mapper.WorldZoomThreshold,
			ZoneZoomThreshold:  mapper.ZoneZoomThreshold,
		},
		Zones:    s.data.World.Locations,
		Regions:  s.data.World.Regions,
		Overflow: s.data.Overflow,
	}
}

// Zone returns a zone on the world graph
func (s *WorldService) Zone(id string) (models.ZoneRef, bool) {
	z, ok := s.data.World.Locations[id]
	return z, ok
}

// RegionColor returns the colour of a zone's region
func (s *WorldService) RegionColor(zone models.ZoneRef) string {
	if r, ok := s.data.World.Regions[zone.Region]; ok {
		return r.Color
	}
	return loader.FallbackRegionColor
}

// GetZone returns the zone detail for an id
func (s *WorldService) GetZone(id string) (*ZoneDetail, error) {
	zone, ok := s.Zone(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}

	rooms := s.data.Rooms(id)
	extent, _ := s.data.Extent(id)
	detail := &ZoneDetail{
		ID:         id,
		Zone:       zone,
		RegionName: s.data.World.Regions[zone.Region].Name,
		TotalRooms: len(rooms),
		Floors:     mapper.ZoneFloors(rooms),
		Extent:     extent,
		Bounds:     mapper.ZoneWorldBounds(zone.GridX, zone.GridY, extent, mapper.ZoneBoundsPadding),
	}
	if zr, ok := s.data.Zones[id]; ok {
		detail.RoomName = zr.ZoneName
	}
	for _, r := range rooms {
		if r.IsZoneExit {
			detail.ExitRooms++
		}
	}
	return detail, nil
}

// hasZone reports whether a zone is on the world graph or in the room table
func (s *WorldService) hasZone(id string) bool {
	if _, ok := s.Zone(id); ok {
		return true
	}
	_, ok := s.data.Zones[id]
	return ok
}

// GetFloor returns the rooms of one floor of a zone
func (s *WorldService) GetFloor(id string, floor int) (*FloorResponse, error) {
	if !s.hasZone(id) {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}

	all := s.data.Rooms(id)
	onFloor := mapper.FilterByFloor(all, floor)
	resp := &FloorResponse{
		ZoneID: id,
		Floor:  floor,
		Floors: mapper.ZoneFloors(all),
		Rooms:  make([]FloorRoom, 0, len(onFloor)),
	}
	for _, r := range onFloor {
		resp.Rooms = append(resp.Rooms, FloorRoom{Room: r, Color: mapper.RoomTerrainColor(r.TerrainTag)})
	}
	return resp, nil
}

// GetFloors returns a zone's floors, highest first. Zones known only to the
// room table count, as for GetFloor.
func (s *WorldService) GetFloors(id string) ([]int, error) {
	if !s.hasZone(id) {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, id)
	}
	return mapper.ZoneFloors(s.data.Rooms(id)), nil
}

// Rooms returns all rooms of a zone
func (s *WorldService) Rooms(id string) []models.RoomRef {
	return s.data.Rooms(id)
}

// Extent returns a zone's room extent
func (s *WorldService) Extent(id string) (mapper.RoomExtent, bool) {
	return s.data.Extent(id)
}

// ZoneIDs returns zone ids in the region, sorted. "" and "all" match every zone.
func (s *WorldService) ZoneIDs(region string) []string {
	ids := make([]string, 0, len(s.data.World.Locations))
	for id, z := range s.data.World.Locations {
		if region == "" || region == "all" || z.Region == region {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// FindZoneByLocationName resolves a free-form location name to a zone id.
// Keys win over display names and exact matches over partial ones.
func (s *WorldService) FindZoneByLocationName(name string) (string, bool) {
	if _, ok := s.data.World.Locations[name]; ok {
		return name, true
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return "", false
	}
	ids := s.ZoneIDs("")

	for _, id := range ids {
		if strings.ToLower(id) == lower {
			return id, true
		}
	}
	for _, id := range ids {
		if strings.ToLower(s.data.World.Locations[id].DisplayName) == lower {
			return id, true
		}
	}
	for _, id := range ids {
		key := strings.ToLower(id)
		if strings.Contains(key, lower) || strings.Contains(lower, key) {
			return id, true
		}
	}
	for _, id := range ids {
		display := strings.ToLower(s.data.World.Locations[id].DisplayName)
		if display != "" && (strings.Contains(display, lower) || strings.Contains(lower, display)) {
			return id, true
		}
	}
	return "", false
}
