package services

import (
	"testing"

	"mudatlas.dev/internal/loader"
	"mudatlas.dev/internal/logger"
)

func newTestWorld(t *testing.T) (*loader.Dataset, *WorldService) {
	t.Helper()
	logger.Silence()
	ds, err := loader.Load("testdata", loader.Options{RejectOverflow: true})
	if err != nil {
		t.Fatalf("load testdata: %v", err)
	}
	return ds, NewWorldService(ds)
}
