package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mudatlas.dev/internal/config"
	"mudatlas.dev/internal/live"
	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/logger"
	"mudatlas.dev/internal/middleware"
	"mudatlas.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, ds *loader.Dataset) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	viewer := cfg.Viewer
	if viewer == nil {
		viewer = config.DefaultViewer()
	}

	// Initialize services
	worldService := services.NewWorldService(ds)
	mapService := services.NewMapService(worldService)
	navService := services.NewNavigationService(worldService)
	mobService := services.NewMobService(ds, worldService)
	searchService := services.NewSearchService(worldService)

	// Initialize handlers
	worldHandler := NewWorldHandler(worldService)
	viewHandler := NewViewHandler(mapService, navService, viewer)
	mobHandler := NewMobHandler(mobService, worldService)
	searchHandler := NewSearchHandler(searchService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/world", worldHandler.GetWorld)
		r.Route("/zones/{id}", func(r chi.Router) {
			r.Get("/", worldHandler.GetZone)
			r.Get("/rooms", worldHandler.GetRooms)
			r.Get("/floors", worldHandler.GetFloors)
			r.Get("/mobs", mobHandler.ZoneMobs)
			r.Get("/mobs/{name}/floors", mobHandler.MobFloors)
		})

		r.Get("/mobs", mobHandler.ListMobs)
		r.Get("/mobs/zones", mobHandler.MobZones)
		r.Get("/mobs/{name}", mobHandler.GetMob)
		r.Get("/search", searchHandler.Search)

		r.Get("/viewer", viewHandler.GetViewer)
		r.Post("/view", viewHandler.PostView)
		r.Post("/navigate", viewHandler.Navigate)
		r.Get("/live", live.NewHandler(mapService, viewer).ServeHTTP)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]any{
				"status": "ok",
				"zones":  len(ds.World.Locations),
				"mobs":   len(ds.Mobs),
			})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticPath))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticPath, "index.html"))
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Error("error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps a service error onto a status code
func respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, services.ErrZoneNotFound), errors.Is(err, services.ErrMobNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNoExit):
		status = http.StatusConflict
	}
	respondError(w, status, err.Error())
}

// parseIntParam parses an integer query parameter with a default value
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

// clamp limits a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
