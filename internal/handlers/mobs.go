package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/services"
)

// MobHandler handles mob roster endpoints
type MobHandler struct {
	mobService   *services.MobService
	worldService *services.WorldService
}

// NewMobHandler creates a new MobHandler
func NewMobHandler(ms *services.MobService, ws *services.WorldService) *MobHandler {
	return &MobHandler{mobService: ms, worldService: ws}
}

// parseMobFilter reads q (or search), type, min_level, max_level, boss and
// sort. Unparseable numbers and flags are ignored.
func parseMobFilter(q url.Values) services.MobFilter {
	search := q.Get("q")
	if search == "" {
		search = q.Get("search")
	}
	boss, _ := strconv.ParseBool(q.Get("boss"))
	minLevel, _ := strconv.Atoi(q.Get("min_level"))
	maxLevel, _ := strconv.Atoi(q.Get("max_level"))
	return services.MobFilter{
		Search:   strings.TrimSpace(search),
		Type:     strings.TrimSpace(q.Get("type")),
		MinLevel: minLevel,
		MaxLevel: maxLevel,
		BossOnly: boss,
		Sort:     q.Get("sort"),
	}
}

// ListMobs handles GET /api/mobs?q=&type=&min_level=&max_level=&boss=&sort=
func (h *MobHandler) ListMobs(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.mobService.GetAll(parseMobFilter(r.URL.Query())))
}

// MobZonesResponse is the set of zones holding a filtered roster
type MobZonesResponse struct {
	Mobs    int      `json:"mobs"`
	ZoneIDs []string `json:"zone_ids"`
}

// MobZones handles GET /api/mobs/zones - the zones to highlight for the
// roster matching the same filter as ListMobs
func (h *MobHandler) MobZones(w http.ResponseWriter, r *http.Request) {
	mobs := h.mobService.GetAll(parseMobFilter(r.URL.Query()))
	respondJSON(w, http.StatusOK, MobZonesResponse{
		Mobs:    len(mobs),
		ZoneIDs: h.mobService.MapZones(mobs),
	})
}

// GetMob handles GET /api/mobs/{name}
func (h *MobHandler) GetMob(w http.ResponseWriter, r *http.Request) {
	mob, err := h.mobService.FindMob(chi.URLParam(r, "name"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, mob)
}

// ZoneMobs handles GET /api/zones/{id}/mobs, taking the same filter as ListMobs
func (h *MobHandler) ZoneMobs(w http.ResponseWriter, r *http.Request) {
	mobs, err := h.mobService.MobsInZone(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, parseMobFilter(r.URL.Query()).Apply(mobs))
}

// MobFloorsResponse lists where a mob spawns in a zone
type MobFloorsResponse struct {
	ZoneID  string `json:"zone_id"`
	Mob     string `json:"mob"`
	Floors  []int  `json:"floors"`
	Nearest *int   `json:"nearest,omitempty"`
}

// MobFloors handles GET /api/zones/{id}/mobs/{name}/floors?from= - the
// floors a mob spawns on and the one closest to the viewer's floor
func (h *MobHandler) MobFloors(w http.ResponseWriter, r *http.Request) {
	zoneID := chi.URLParam(r, "id")
	if _, ok := h.worldService.Zone(zoneID); !ok {
		respondError(w, http.StatusNotFound, "Zone not found")
		return
	}

	name := chi.URLParam(r, "name")
	resp := MobFloorsResponse{
		ZoneID: zoneID,
		Mob:    name,
		Floors: h.mobService.MobFloors(zoneID, name),
	}
	if nearest, ok := mapper.NearestFloor(resp.Floors, parseIntParam(r, "from", 0)); ok {
		resp.Nearest = &nearest
	}
	respondJSON(w, http.StatusOK, resp)
}
