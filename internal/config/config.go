package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"mudatlas.dev/internal/models"
)

// CapacityMode decides what happens to zones whose rooms spill out of
// their world grid cell.
type CapacityMode string

const (
	CapacityWarn   CapacityMode = "warn"
	CapacityReject CapacityMode = "reject"
)

// Config holds all application configuration
type Config struct {
	ServerAddr   string
	DataPath     string
	StaticPath   string
	CapacityMode CapacityMode
	Viewer       *ViewerConfig
}

// ViewerConfig holds the defaults handed to a fresh browser session
type ViewerConfig struct {
	DefaultZone   string  `json:"default_zone"`
	DefaultZoom   float64 `json:"default_zoom"`
	DefaultWidth  float64 `json:"default_width"`
	DefaultHeight float64 `json:"default_height"`
	Theme         Theme   `json:"theme"`

	// AllowedOrigins are the extra browser origins allowed on the live
	// socket besides the server's own host. "*" allows any.
	AllowedOrigins []string `json:"allowed_origins,omitempty"`
}

// Theme holds color scheme settings
type Theme struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Error      string `json:"error"`
}

// DefaultViewer returns the viewer settings used when viewer.json is absent.
func DefaultViewer() *ViewerConfig {
	return &ViewerConfig{
		DefaultZone:   "myronmet",
		DefaultZoom:   1,
		DefaultWidth:  1000,
		DefaultHeight: 800,
		Theme: Theme{
			Background: "#0a0a0a",
			Text:       "#00ff00",
			Accent:     "#ffff00",
			Error:      "#ff0000",
		},
	}
}

// Apply fills the fields a client left unset with the viewer defaults.
// The default zone is only used when the client names no zone at all.
func (v *ViewerConfig) Apply(vs *models.ViewState) {
	if vs.Zoom == 0 {
		vs.Zoom = v.DefaultZoom
	}
	if vs.Width <= 0 {
		vs.Width = v.DefaultWidth
	}
	if vs.Height <= 0 {
		vs.Height = v.DefaultHeight
	}
	if vs.CurrentZone == "" && vs.SelectedZone == "" {
		vs.CurrentZone = v.DefaultZone
	}
}

// Load reads configuration from the environment and the data directory
func Load() (*Config, error) {
	cfg := &Config{
		ServerAddr:   envOr("SERVER_ADDR", ":8080"),
		DataPath:     envOr("DATA_PATH", "data"),
		StaticPath:   envOr("STATIC_PATH", "static"),
		CapacityMode: CapacityMode(strings.ToLower(envOr("CAPACITY_MODE", string(CapacityWarn)))),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	viewer, err := loadViewerConfig(filepath.Join(cfg.DataPath, "viewer.json"))
	if err != nil {
		return nil, err
	}
	cfg.Viewer = viewer

	return cfg, nil
}

// Validate checks values that cannot be fixed up with a default
func (c *Config) Validate() error {
	switch c.CapacityMode {
	case CapacityWarn, CapacityReject:
	default:
		return fmt.Errorf("invalid capacity mode %q (want %q or %q)", c.CapacityMode, CapacityWarn, CapacityReject)
	}
	return nil
}

// loadViewerConfig reads viewer.json, falling back to defaults when missing
func loadViewerConfig(path string) (*ViewerConfig, error) {
	viewer := DefaultViewer()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return viewer, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read viewer.json: %w", err)
	}

	if err := json.Unmarshal(data, viewer); err != nil {
		return nil, fmt.Errorf("failed to parse viewer.json: %w", err)
	}

	return viewer, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
