package config

import (
	"os"
	"path/filepath"
	"testing"

	"mudatlas.dev/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("CAPACITY_MODE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerAddr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.ServerAddr)
	}
	if cfg.CapacityMode != CapacityWarn {
		t.Errorf("expected warn mode, got %q", cfg.CapacityMode)
	}
	if cfg.Viewer.DefaultZone != "myronmet" || cfg.Viewer.DefaultZoom != 1 {
		t.Errorf("unexpected viewer defaults: %+v", cfg.Viewer)
	}
}

func TestLoadViewerFile(t *testing.T) {
	dir := t.TempDir()
	body := `{"default_zone": "ancient_caverns", "default_zoom": 3, "allowed_origins": ["https://atlas.example.org"]}`
	if err := os.WriteFile(filepath.Join(dir, "viewer.json"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_PATH", dir)
	t.Setenv("CAPACITY_MODE", "REJECT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CapacityMode != CapacityReject {
		t.Errorf("expected reject mode, got %q", cfg.CapacityMode)
	}
	if cfg.Viewer.DefaultZone != "ancient_caverns" || cfg.Viewer.DefaultZoom != 3 {
		t.Errorf("viewer.json not applied: %+v", cfg.Viewer)
	}
	if len(cfg.Viewer.AllowedOrigins) != 1 || cfg.Viewer.AllowedOrigins[0] != "https://atlas.example.org" {
		t.Errorf("allowed origins not read: %v", cfg.Viewer.AllowedOrigins)
	}
	// fields absent from the file keep their defaults
	if cfg.Viewer.DefaultWidth != 1000 {
		t.Errorf("expected default width, got %v", cfg.Viewer.DefaultWidth)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_PATH", dir)
	t.Setenv("CAPACITY_MODE", "ignore")
	if _, err := Load(); err == nil {
		t.Error("expected invalid capacity mode to fail")
	}

	t.Setenv("CAPACITY_MODE", "warn")
	if err := os.WriteFile(filepath.Join(dir, "viewer.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected malformed viewer.json to fail")
	}
}

func TestViewerApply(t *testing.T) {
	v := DefaultViewer()

	vs := models.ViewState{}
	v.Apply(&vs)
	if vs.Zoom != 1 || vs.Width != 1000 || vs.Height != 800 || vs.CurrentZone != "myronmet" {
		t.Errorf("defaults not applied: %+v", vs)
	}

	vs = models.ViewState{Zoom: 4, Width: 320, Height: 200, SelectedZone: "far_isle"}
	v.Apply(&vs)
	if vs.Zoom != 4 || vs.Width != 320 || vs.Height != 200 {
		t.Errorf("client values overwritten: %+v", vs)
	}
	if vs.CurrentZone != "" {
		t.Errorf("default zone must not replace a selection, got %q", vs.CurrentZone)
	}
}
