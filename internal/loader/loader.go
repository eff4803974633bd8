// Package loader reads the static reference data the atlas serves: the
// world graph, the per-zone room tables and the mob roster.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"mudatlas.dev/internal/logger"
	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/models"
)

// Data file names inside the data directory.
const (
	WorldGraphFile = "complete_world_map_data.json"
	RoomDataFile   = "WorldData.json"
	MobRosterFile  = "Mobs.json"
)

// FallbackRegionColor replaces missing or unparseable region colours.
const FallbackRegionColor = "#888888"

// LoadError names the data file that could not be loaded.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrCapacity is wrapped by Load when a zone overflows its grid cell and
// overflow is not allowed.
var ErrCapacity = errors.New("zone rooms exceed grid cell")

// Options tune validation during Load.
type Options struct {
	RejectOverflow bool
}

// CapacityIssue describes a zone whose rooms spill into neighbouring cells.
type CapacityIssue struct {
	ZoneID string            `json:"zone_id"`
	Extent mapper.RoomExtent `json:"extent"`
	Limit  int               `json:"limit"`
}

// Dataset is the fully parsed, read-only reference data.
type Dataset struct {
	World    models.WorldGraph
	Zones    map[string]models.ZoneRooms
	Mobs     []models.MobRecord
	Overflow []CapacityIssue

	rooms   map[string][]models.RoomRef // sorted by room id
	extents map[string]mapper.RoomExtent
}

// Rooms returns a zone's rooms ordered by id. Unknown zones have none.
func (d *Dataset) Rooms(zoneID string) []models.RoomRef {
	return d.rooms[zoneID]
}

// Extent returns the room extent of a zone and whether the zone has rooms.
func (d *Dataset) Extent(zoneID string) (mapper.RoomExtent, bool) {
	ext, ok := d.extents[zoneID]
	return ext, ok
}

// Load reads every data file under dir. The world graph is required; a
// missing room table or mob roster loads as empty.
func Load(dir string, opts Options) (*Dataset, error) {
	for _, p := range []*mapper.TerrainPalette{mapper.WorldTerrain, mapper.RoomTerrain} {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	ds := &Dataset{
		Zones:   make(map[string]models.ZoneRooms),
		rooms:   make(map[string][]models.RoomRef),
		extents: make(map[string]mapper.RoomExtent),
	}

	if err := readJSON(filepath.Join(dir, WorldGraphFile), &ds.World, false); err != nil {
		return nil, err
	}
	if ds.World.Locations == nil {
		ds.World.Locations = make(map[string]models.ZoneRef)
	}
	normalizeRegions(&ds.World)

	var roomData models.RoomData
	if err := readJSON(filepath.Join(dir, RoomDataFile), &roomData, true); err != nil {
		return nil, err
	}
	if roomData.Zones != nil {
		ds.Zones = roomData.Zones
	}

	if err := readJSON(filepath.Join(dir, MobRosterFile), &ds.Mobs, true); err != nil {
		return nil, err
	}

	for zoneID, zone := range ds.Zones {
		list := make([]models.RoomRef, 0, len(zone.Rooms))
		for key, room := range zone.Rooms {
			if room.ID == 0 {
				room.ID = roomIDFromKey(zoneID, key)
				zone.Rooms[key] = room
			}
			list = append(list, room)
		}
		sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
		ds.rooms[zoneID] = list
		ds.extents[zoneID] = mapper.RoomBounds(list)
		checkUniqueCoords(zoneID, list)
	}

	ds.Overflow = checkCapacity(ds)
	if len(ds.Overflow) > 0 && opts.RejectOverflow {
		return nil, &LoadError{
			File: RoomDataFile,
			Err:  fmt.Errorf("%w: %d zones, first %s", ErrCapacity, len(ds.Overflow), ds.Overflow[0].ZoneID),
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"zones":    len(ds.World.Locations),
		"regions":  len(ds.World.Regions),
		"room_map": len(ds.Zones),
		"mobs":     len(ds.Mobs),
		"overflow": len(ds.Overflow),
	}).Info("reference data loaded")

	return ds, nil
}

func readJSON(path string, v any, optional bool) error {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if optional && errors.Is(err, fs.ErrNotExist) {
		logger.Log.WithField("file", name).Warn("data file missing, loading empty")
		return nil
	}
	if err != nil {
		return &LoadError{File: name, Err: err}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return &LoadError{File: name, Err: err}
	}
	return nil
}

// normalizeRegions rewrites region colours to #rrggbb form.
func normalizeRegions(world *models.WorldGraph) {
	for key, region := range world.Regions {
		c, err := colorful.Hex(region.Color)
		if err != nil {
			if region.Color != "" {
				logger.Log.WithFields(logrus.Fields{
					"region": key,
					"color":  region.Color,
				}).Warn("invalid region colour, using fallback")
			}
			region.Color = FallbackRegionColor
		} else {
			region.Color = c.Hex()
		}
		world.Regions[key] = region
	}
}

// checkCapacity lists zones on the world graph whose rooms overflow their cell.
func checkCapacity(ds *Dataset) []CapacityIssue {
	var issues []CapacityIssue
	for zoneID := range ds.World.Locations {
		ext, ok := ds.extents[zoneID]
		if !ok || mapper.CheckCapacity(ext) {
			continue
		}
		issues = append(issues, CapacityIssue{ZoneID: zoneID, Extent: ext, Limit: mapper.ZoneReach()})
		logger.Log.WithFields(logrus.Fields{
			"zone":  zoneID,
			"min_x": ext.MinX, "max_x": ext.MaxX,
			"min_y": ext.MinY, "max_y": ext.MaxY,
		}).Warn("zone rooms overflow grid cell")
	}
	sort.Slice(issues, func(i, j int) bool { return issues[i].ZoneID < issues[j].ZoneID })
	return issues
}

// roomIDFromKey recovers the id of a room that omits RoomId from its key in
// the zone's room map.
func roomIDFromKey(zoneID, key string) int {
	id, err := strconv.Atoi(key)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"zone": zoneID,
			"key":  key,
		}).Warn("room has no id")
		return 0
	}
	return id
}

type coord struct{ x, y, z int }

func checkUniqueCoords(zoneID string, rooms []models.RoomRef) {
	seen := make(map[coord]int, len(rooms))
	for _, r := range rooms {
		c := coord{r.X, r.Y, r.Z}
		if other, dup := seen[c]; dup {
			logger.Log.WithFields(logrus.Fields{
				"zone":  zoneID,
				"room":  r.ID,
				"other": other,
			}).Warn("rooms share coordinates")
			continue
		}
		seen[c] = r.ID
	}
}

// Cache loads a dataset once and hands the same result to every caller.
type Cache struct {
	dir  string
	opts Options

	once sync.Once
	ds   *Dataset
	err  error
}

// NewCache prepares a cache for the data directory; nothing is read yet.
func NewCache(dir string, opts Options) *Cache {
	return &Cache{dir: dir, opts: opts}
}

// Get loads the dataset on first use.
func (c *Cache) Get() (*Dataset, error) {
	c.once.Do(func() {
		c.ds, c.err = Load(c.dir, c.opts)
	})
	return c.ds, c.err
}
