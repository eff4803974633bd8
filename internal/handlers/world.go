package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mudatlas.dev/internal/services"
)

// WorldHandler handles world, zone and room endpoints
type WorldHandler struct {
	worldService *services.WorldService
}

// NewWorldHandler creates a new WorldHandler
func NewWorldHandler(ws *services.WorldService) *WorldHandler {
	return &WorldHandler{worldService: ws}
}

// GetWorld handles GET /api/world - returns the world manifest
func (h *WorldHandler) GetWorld(w http.ResponseWriter, r *http.Request) {
	world := h.worldService.GetWorldResponse()
	respondJSON(w, http.StatusOK, world)
}

// GetZone handles GET /api/zones/{id}
func (h *WorldHandler) GetZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.worldService.GetZone(chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, zone)
}

// GetRooms handles GET /api/zones/{id}/rooms?floor= - returns one floor plan
func (h *WorldHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	floor := 0
	if s := r.URL.Query().Get("floor"); s != "" {
		f, err := strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid floor")
			return
		}
		floor = f
	}

	plan, err := h.worldService.GetFloor(chi.URLParam(r, "id"), floor)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}

// GetFloors handles GET /api/zones/{id}/floors
func (h *WorldHandler) GetFloors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	floors, err := h.worldService.GetFloors(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"zone_id": id,
		"floors":  floors,
	})
}
