package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/models"
)

var tierColors = map[string]string{
	"Mobs":       "#00FF00",
	"Elite Mob":  "#0088FF",
	"Boss":       "#FF00FF",
	"Event Mob":  "#FFD700",
	"Rare Mob":   "#00FFFF",
	"World Boss": "#FF0000",
}

var difficultyNames = []string{"Normal", "Easy", "Medium", "Hard", "Very Hard", "Elite", "Boss"}

// TierColor returns the display colour of a mob tier
func TierColor(tier string) string {
	if c, ok := tierColors[tier]; ok {
		return c
	}
	return "#FFFFFF"
}

// DifficultyText returns the label for a difficulty rating
func DifficultyText(difficulty int) string {
	if difficulty < 0 || difficulty >= len(difficultyNames) {
		return difficultyNames[0]
	}
	return difficultyNames[difficulty]
}

// MobService handles the mob roster
type MobService struct {
	mobs  []models.MobRecord
	world *WorldService
}

// NewMobService creates a new MobService
func NewMobService(ds *loader.Dataset, ws *WorldService) *MobService {
	return &MobService{mobs: ds.Mobs, world: ws}
}

// MobView is a mob with its display fields resolved. Zones are the raw
// location names; ZoneIDs are the ones found on the world graph.
type MobView struct {
	models.MobRecord
	TierColor      string   `json:"tier_color"`
	DifficultyText string   `json:"difficulty_text"`
	Zones          []string `json:"zones"`
	ZoneIDs        []string `json:"zone_ids"`
}

func (s *MobService) view(m models.MobRecord) MobView {
	return MobView{
		MobRecord:      m,
		TierColor:      TierColor(m.Tier),
		DifficultyText: DifficultyText(m.Difficulty),
		Zones:          m.Locations(),
		ZoneIDs:        s.resolveZones(m.Locations()),
	}
}

// resolveZones maps location names to zone ids, dropping unknown ones.
func (s *MobService) resolveZones(locations []string) []string {
	seen := mapset.New[string]()
	out := make([]string, 0, len(locations))
	for _, loc := range locations {
		id, ok := s.world.FindZoneByLocationName(loc)
		if !ok || seen.Has(id) {
			continue
		}
		seen.Put(id)
		out = append(out, id)
	}
	return out
}

// Type groups understood by MobFilter besides a literal type
const (
	TypeGroupNPC = "NPC" // quest givers, merchants and greeters
	TypeGroupMob = "Mob" // hostile creatures: NORMAL, 0 or untyped
)

var npcTypes = map[models.MobType]bool{
	"PLAYER_GREETING": true,
	"OUT_OF_MONEY":    true,
	"QUEST_GIVER":     true,
	"MERCHANT":        true,
}

var hostileTypes = map[models.MobType]bool{
	"NORMAL": true,
	"0":      true,
	"":       true,
}

// MobFilter narrows and orders a mob list
type MobFilter struct {
	Search   string // name substring, case-insensitive
	Type     string // "" or "all", a type group, or a type; case-insensitive
	MinLevel int
	MaxLevel int // 0 for no upper bound
	BossOnly bool
	Sort     string // "name" (default), "level", "level_desc", "type"
}

// Match reports whether a mob passes the filter
func (f MobFilter) Match(m models.MobRecord) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(f.Search)) {
		return false
	}

	switch {
	case f.Type == "" || strings.EqualFold(f.Type, "all"):
	case strings.EqualFold(f.Type, TypeGroupNPC):
		if !npcTypes[m.Type] {
			return false
		}
	case strings.EqualFold(f.Type, TypeGroupMob):
		if !hostileTypes[m.Type] {
			return false
		}
	default:
		if !strings.EqualFold(string(m.Type), f.Type) {
			return false
		}
	}

	if m.Level < f.MinLevel || (f.MaxLevel > 0 && m.Level > f.MaxLevel) {
		return false
	}
	return !f.BossOnly || m.IsBoss
}

// Apply returns the mobs passing the filter, sorted
func (f MobFilter) Apply(mobs []MobView) []MobView {
	out := make([]MobView, 0, len(mobs))
	for _, m := range mobs {
		if f.Match(m.MobRecord) {
			out = append(out, m)
		}
	}

	switch f.Sort {
	case "level":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	case "level_desc", "level-desc":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Level > out[j].Level })
	case "type":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// GetAll returns the roster filtered and sorted
func (s *MobService) GetAll(f MobFilter) []MobView {
	all := make([]MobView, 0, len(s.mobs))
	for _, m := range s.mobs {
		all = append(all, s.view(m))
	}
	return f.Apply(all)
}

// MapZones returns the zone ids where any of the mobs live, sorted. The
// viewer highlights them to show a filtered roster on the map.
func (s *MobService) MapZones(mobs []MobView) []string {
	records := make([]models.MobRecord, len(mobs))
	for i, m := range mobs {
		records[i] = m.MobRecord
	}
	ids := s.resolveZones(ZonesForMobs(records))
	sort.Strings(ids)
	return ids
}

// FindMob looks a mob up by exact, case-insensitive, then partial name
func (s *MobService) FindMob(name string) (*MobView, error) {
	lower := strings.ToLower(name)
	matchers := []func(models.MobRecord) bool{
		func(m models.MobRecord) bool { return m.Name == name },
		func(m models.MobRecord) bool { return strings.ToLower(m.Name) == lower },
		func(m models.MobRecord) bool {
			n := strings.ToLower(m.Name)
			return lower != "" && (strings.Contains(n, lower) || strings.Contains(lower, n))
		},
	}
	for _, match := range matchers {
		for _, m := range s.mobs {
			if match(m) {
				v := s.view(m)
				return &v, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMobNotFound, name)
}

// MobsInZone returns mobs whose location list names the zone exactly,
// by key or display name. "Myronmet" does not match "New Myronmet".
func (s *MobService) MobsInZone(zoneID string) ([]MobView, error) {
	zone, ok := s.world.Zone(zoneID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}

	names := mapset.New[string]()
	names.Put(strings.ToLower(strings.TrimSpace(zoneID)))
	if zone.DisplayName != "" {
		names.Put(strings.ToLower(strings.TrimSpace(zone.DisplayName)))
	}

	out := make([]MobView, 0)
	for _, m := range s.mobs {
		for _, loc := range m.Locations() {
			if names.Has(strings.ToLower(loc)) {
				out = append(out, s.view(m))
				break
			}
		}
	}
	return out, nil
}

// ZonesForMobs returns the distinct location names of the given mobs, in
// first-seen order.
func ZonesForMobs(mobs []models.MobRecord) []string {
	seen := mapset.New[string]()
	out := make([]string, 0)
	for _, m := range mobs {
		for _, loc := range m.Locations() {
			if seen.Has(loc) {
				continue
			}
			seen.Put(loc)
			out = append(out, loc)
		}
	}
	return out
}

// MobFloors returns the floors of a zone where an NPC with the mob's name
// spawns, highest first.
func (s *MobService) MobFloors(zoneID, mobName string) []int {
	floors := mapset.New[int]()
	for _, r := range s.world.Rooms(zoneID) {
		for _, npc := range r.Npcs {
			if strings.EqualFold(npc.Name, mobName) {
				floors.Put(r.Z)
				break
			}
		}
	}
	out := make([]int, 0, floors.Size())
	floors.Each(func(f int) { out = append(out, f) })
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
