package handlers

import (
	"net/http"

	"mudatlas.dev/internal/services"
)

// SearchHandler handles zone search
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(ss *services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: ss}
}

// Search handles GET /api/search?q=&limit=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit := clamp(parseIntParam(r, "limit", 10), 1, 50)
	respondJSON(w, http.StatusOK, h.searchService.Search(r.URL.Query().Get("q"), limit))
}
