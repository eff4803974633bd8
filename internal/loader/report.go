package loader

import (
	"fmt"
	"sort"

	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/models"
)

// Report summarises a dataset for offline checking.
type Report struct {
	Zones         int             `json:"zones"`
	Regions       int             `json:"regions"`
	RoomTables    int             `json:"room_tables"`
	Rooms         int             `json:"rooms"`
	Mobs          int             `json:"mobs"`
	ZoneCapacity  int             `json:"zone_capacity"`
	ZoneReach     int             `json:"zone_reach"`
	ZoneReports   []ZoneReport    `json:"zone_reports"`
	Overflow      []CapacityIssue `json:"overflow"`
	OrphanTables  []string        `json:"orphan_tables"`
	DanglingExits []DanglingExit  `json:"dangling_exits"`
	Palettes      []PaletteInfo   `json:"palettes"`
}

// PaletteInfo describes a terrain palette the dataset is drawn with.
type PaletteInfo struct {
	Name    string `json:"name"`
	Default string `json:"default"`
	Tags    int    `json:"tags"`
}

// ZoneReport is one zone's line in a Report.
type ZoneReport struct {
	ZoneID      string            `json:"zone_id"`
	DisplayName string            `json:"display_name"`
	Region      string            `json:"region"`
	Rooms       int               `json:"rooms"`
	Floors      []int             `json:"floors"`
	Extent      mapper.RoomExtent `json:"extent"`
	Overflow    bool              `json:"overflow,omitempty"`
}

// DanglingExit is an exit pointing at a zone missing from the world graph.
// Via is a direction for zone exits and "room <id>" for room exits.
type DanglingExit struct {
	ZoneID string `json:"zone_id"`
	Via    string `json:"via"`
	Target string `json:"target"`
}

// OK reports whether the dataset has no overflow and no broken links.
func (r *Report) OK() bool {
	return len(r.Overflow) == 0 && len(r.OrphanTables) == 0 && len(r.DanglingExits) == 0
}

// BuildReport checks a loaded dataset. Lists are sorted by zone id.
func BuildReport(ds *Dataset) *Report {
	r := &Report{
		Zones:         len(ds.World.Locations),
		Regions:       len(ds.World.Regions),
		RoomTables:    len(ds.Zones),
		Mobs:          len(ds.Mobs),
		ZoneCapacity:  mapper.ZoneCapacity(),
		ZoneReach:     mapper.ZoneReach(),
		ZoneReports:   make([]ZoneReport, 0, len(ds.World.Locations)),
		Overflow:      ds.Overflow,
		OrphanTables:  make([]string, 0),
		DanglingExits: make([]DanglingExit, 0),
	}
	for _, p := range []*mapper.TerrainPalette{mapper.WorldTerrain, mapper.RoomTerrain} {
		r.Palettes = append(r.Palettes, PaletteInfo{Name: p.Name, Default: p.Default, Tags: len(p.Entries())})
	}
	if r.Overflow == nil {
		r.Overflow = make([]CapacityIssue, 0)
	}

	overflow := make(map[string]bool, len(ds.Overflow))
	for _, issue := range ds.Overflow {
		overflow[issue.ZoneID] = true
	}

	for _, id := range sortedKeys(ds.World.Locations) {
		zone := ds.World.Locations[id]
		rooms := ds.Rooms(id)
		ext, _ := ds.Extent(id)
		r.Rooms += len(rooms)
		r.ZoneReports = append(r.ZoneReports, ZoneReport{
			ZoneID:      id,
			DisplayName: zone.DisplayName,
			Region:      zone.Region,
			Rooms:       len(rooms),
			Floors:      mapper.ZoneFloors(rooms),
			Extent:      ext,
			Overflow:    overflow[id],
		})

		zone.Exits.Each(func(d models.Direction, target string) {
			if _, ok := ds.World.Locations[target]; !ok {
				r.DanglingExits = append(r.DanglingExits, DanglingExit{ZoneID: id, Via: d.String(), Target: target})
			}
		})
	}

	for _, id := range sortedKeys(ds.Zones) {
		rooms := ds.Rooms(id)
		if _, ok := ds.World.Locations[id]; !ok {
			r.OrphanTables = append(r.OrphanTables, id)
			r.Rooms += len(rooms)
		}
		for _, room := range rooms {
			if !room.IsZoneExit || room.ExitToZone == "" {
				continue
			}
			if _, ok := ds.World.Locations[room.ExitToZone]; !ok {
				r.DanglingExits = append(r.DanglingExits, DanglingExit{
					ZoneID: id,
					Via:    fmt.Sprintf("room %d", room.ID),
					Target: room.ExitToZone,
				})
			}
		}
	}
	return r
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
