package services

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"mudatlas.dev/internal/models"
)

// NavigationService walks the zone graph along zone exits
type NavigationService struct {
	world *WorldService
}

// NewNavigationService creates a new NavigationService
func NewNavigationService(ws *WorldService) *NavigationService {
	return &NavigationService{world: ws}
}

// Step is the result of one move on the zone graph
type Step struct {
	ZoneID  string         `json:"zone_id"`
	Zone    models.ZoneRef `json:"zone"`
	Visited []string       `json:"visited"`
}

// Move follows the exit of zoneID in direction. Visited zones are returned
// with the destination added, sorted.
func (s *NavigationService) Move(zoneID, direction string, visited []string) (*Step, error) {
	zone, ok := s.world.Zone(zoneID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}

	d, ok := models.ParseDirection(direction)
	if !ok {
		return nil, fmt.Errorf("invalid direction: %s", direction)
	}

	target, ok := zone.Exits.Get(d)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrNoExit, d, zoneID)
	}
	dest, ok := s.world.Zone(target)
	if !ok {
		return nil, fmt.Errorf("%w: exit %s of %s leads to %s", ErrZoneNotFound, d, zoneID, target)
	}

	seen := mapset.New[string]()
	for _, id := range visited {
		seen.Put(id)
	}
	seen.Put(zoneID)
	seen.Put(target)

	out := make([]string, 0, seen.Size())
	seen.Each(func(id string) {
		out = append(out, id)
	})
	sort.Strings(out)

	return &Step{ZoneID: target, Zone: dest, Visited: out}, nil
}
