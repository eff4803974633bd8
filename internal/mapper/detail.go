package mapper

import (
	"fmt"
	"math"
)

// DetailLevel is the rendering tier picked from the zoom factor.
type DetailLevel int

const (
	DetailWorld DetailLevel = iota // zone nodes and connections
	DetailZones                    // zone outlines and markers
	DetailRooms                    // individual rooms of one floor
)

// String returns the tier name sent to the client.
func (d DetailLevel) String() string {
	switch d {
	case DetailWorld:
		return "world"
	case DetailZones:
		return "zones"
	case DetailRooms:
		return "rooms"
	}
	return "unknown"
}

// MarshalText encodes the tier by name.
func (d DetailLevel) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a tier name.
func (d *DetailLevel) UnmarshalText(text []byte) error {
	for _, l := range []DetailLevel{DetailWorld, DetailZones, DetailRooms} {
		if l.String() == string(text) {
			*d = l
			return nil
		}
	}
	return fmt.Errorf("unknown detail level %q", text)
}

// DetailLevelFor maps a zoom factor to a rendering tier.
func DetailLevelFor(zoom float64) DetailLevel {
	if zoom < WorldZoomThreshold {
		return DetailWorld
	}
	if zoom < ZoneZoomThreshold {
		return DetailZones
	}
	return DetailRooms
}

const zoomStep = 1.3

// ClampZoom limits a zoom factor to [MinZoom, MaxZoom]. NaN maps to 1.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) {
		return 1
	}
	return math.Max(MinZoom, math.Min(MaxZoom, zoom))
}

// ZoomIn returns the next keyboard zoom step.
func ZoomIn(zoom float64) float64 {
	return ClampZoom(zoom * zoomStep)
}

// ZoomOut returns the previous keyboard zoom step.
func ZoomOut(zoom float64) float64 {
	return ClampZoom(zoom / zoomStep)
}
