package handlers

import (
	"encoding/json"
	"net/http"

	"mudatlas.dev/internal/config"
	"mudatlas.dev/internal/models"
	"mudatlas.dev/internal/services"
)

// ViewHandler plans frames and moves between zones
type ViewHandler struct {
	mapService *services.MapService
	navService *services.NavigationService
	viewer     *config.ViewerConfig
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(ms *services.MapService, ns *services.NavigationService, viewer *config.ViewerConfig) *ViewHandler {
	return &ViewHandler{
		mapService: ms,
		navService: ns,
		viewer:     viewer,
	}
}

// GetViewer handles GET /api/viewer - returns the session defaults and theme
func (h *ViewHandler) GetViewer(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.viewer)
}

// PostView handles POST /api/view - turns a view state, with an optional
// zoom action, into a frame
func (h *ViewHandler) PostView(w http.ResponseWriter, r *http.Request) {
	var vs models.ViewState
	if err := json.NewDecoder(r.Body).Decode(&vs); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.viewer.Apply(&vs)
	frame, err := h.mapService.View(vs)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, frame)
}

// NavigateRequest is the body of POST /api/navigate
type NavigateRequest struct {
	ZoneID    string   `json:"zone_id"`
	Direction string   `json:"direction"`
	Visited   []string `json:"visited"`
}

// Navigate handles POST /api/navigate
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ZoneID == "" {
		req.ZoneID = h.viewer.DefaultZone
	}

	step, err := h.navService.Move(req.ZoneID, req.Direction, req.Visited)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, step)
}
