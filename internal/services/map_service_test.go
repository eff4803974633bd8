package services

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"mudatlas.dev/internal/mapper"
	"mudatlas.dev/internal/models"
)

func newTestMap(t *testing.T) *MapService {
	_, ws := newTestWorld(t)
	return NewMapService(ws)
}

func baseView(zoom float64) models.ViewState {
	return models.ViewState{
		Zoom:        zoom,
		CurrentZone: "myronmet",
		Width:       1000,
		Height:      800,
	}
}

func TestPlanWorldTier(t *testing.T) {
	ms := newTestMap(t)
	frame := ms.Plan(baseView(1))

	if frame.Tier != mapper.DetailWorld {
		t.Fatalf("expected world tier, got %s", frame.Tier)
	}
	if len(frame.Nodes) != 1 || frame.Nodes[0].ZoneID != "myronmet" {
		t.Fatalf("expected only myronmet in view, got %+v", frame.Nodes)
	}
	if frame.Nodes[0].Color != ColorCurrent || !frame.Nodes[0].Current {
		t.Errorf("current zone not marked: %+v", frame.Nodes[0])
	}
	// the exit to a zone missing from the graph is dropped
	if len(frame.Connections) != 2 {
		t.Errorf("expected 2 connections, got %+v", frame.Connections)
	}
	if frame.Culled != 3 {
		t.Errorf("expected 3 culled zones, got %d", frame.Culled)
	}
	if len(frame.Rooms) != 0 || len(frame.Outlines) != 0 {
		t.Error("world tier must not emit rooms or outlines")
	}
}

func TestPlanWorldColors(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(0.5)
	vs.VisitedZones = []string{"new_myronmet"}
	vs.HighlightedZones = []string{"The Ancient Caverns"}
	vs.PanY = -300 // move the view down to bring the caverns in

	frame := ms.Plan(vs)
	colors := make(map[string]string)
	for _, n := range frame.Nodes {
		colors[n.ZoneID] = n.Color
	}
	want := map[string]string{
		"myronmet":        ColorCurrent,
		"new_myronmet":    ColorVisited,
		"ancient_caverns": ColorHighlighted,
	}
	if !reflect.DeepEqual(colors, want) {
		t.Errorf("expected %v, got %v", want, colors)
	}

	regionColor := map[string]string{
		"myronmet":        "#3366cc",
		"new_myronmet":    "#3366cc",
		"ancient_caverns": "#663300",
	}
	for _, c := range frame.Connections {
		both := c.From != "ancient_caverns" && c.To != "ancient_caverns"
		if c.Visited != both {
			t.Errorf("connection %s->%s visited=%v", c.From, c.To, c.Visited)
		}
		want := ColorVisited
		if !c.Visited {
			want = mapper.Dim(regionColor[c.From], ColorUnvisited, UnvisitedDim)
		}
		if c.Color != want {
			t.Errorf("connection %s->%s colour %s, want %s", c.From, c.To, c.Color, want)
		}
	}
}

func TestPlanRegionColor(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(0.5)
	vs.CurrentZone = ""
	vs.Region = "central"

	frame := ms.Plan(vs)
	if len(frame.Nodes) != 2 {
		t.Fatalf("expected both central zones, got %+v", frame.Nodes)
	}
	for _, n := range frame.Nodes {
		if n.Color != "#3366cc" {
			t.Errorf("expected region colour for %s, got %s", n.ZoneID, n.Color)
		}
	}
	// centred between the two central zones
	if frame.ViewBox.Left+frame.ViewBox.Width()/2 != 500 {
		t.Errorf("unexpected view box %+v", frame.ViewBox)
	}
}

func TestPlanZonesTier(t *testing.T) {
	ms := newTestMap(t)
	frame := ms.Plan(baseView(2))

	if frame.Tier != mapper.DetailZones {
		t.Fatalf("expected zones tier, got %s", frame.Tier)
	}
	if len(frame.Outlines) != 1 || frame.Outlines[0].ZoneID != "myronmet" {
		t.Fatalf("unexpected outlines %+v", frame.Outlines)
	}
	b := frame.Outlines[0].Bounds
	if b.Left != -95 || b.Right != 117.5 || b.Top != -50 || b.Bottom != 162.5 {
		t.Errorf("unexpected outline bounds %+v", b)
	}
	if len(frame.Markers) != 1 {
		t.Errorf("expected one marker, got %+v", frame.Markers)
	}
	if len(frame.Nodes) != 0 || len(frame.Rooms) != 0 {
		t.Error("zones tier must not emit nodes or rooms")
	}
}

func TestPlanRoomsTier(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(5)
	vs.HighlightedMob = "town guard"
	vs.SelectedRoom = 4

	frame := ms.Plan(vs)
	if frame.Tier != mapper.DetailRooms {
		t.Fatalf("expected rooms tier, got %s", frame.Tier)
	}
	if len(frame.Rooms) != 3 {
		t.Fatalf("expected 3 ground floor rooms, got %+v", frame.Rooms)
	}

	byID := make(map[int]RoomCell)
	for _, r := range frame.Rooms {
		byID[r.RoomID] = r
	}
	if r := byID[1]; r.Color != "#228B22" || !r.HasNpcs || !r.Highlighted {
		t.Errorf("room 1 wrong: %+v", r)
	}
	if r := byID[2]; !reflect.DeepEqual(r.Exits, []string{"west", "up"}) || r.Position.X != 22.5 {
		t.Errorf("room 2 wrong: %+v", r)
	}
	if r := byID[4]; !r.IsZoneExit || r.ExitToZone != "ancient_caverns" || !r.Selected {
		t.Errorf("room 4 wrong: %+v", r)
	}
	if len(frame.Nodes) != 0 || len(frame.Outlines) != 0 {
		t.Error("rooms tier must not emit nodes or outlines")
	}
}

func TestPlanRoomsFloor(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(5)
	vs.Floor = 1
	vs.HighlightedRooms = []int{3}

	frame := ms.Plan(vs)
	if len(frame.Rooms) != 1 || frame.Rooms[0].RoomID != 3 || !frame.Rooms[0].Highlighted {
		t.Fatalf("expected watchtower only, got %+v", frame.Rooms)
	}
	if frame.Rooms[0].Position.Floor != 1 {
		t.Errorf("expected floor 1, got %d", frame.Rooms[0].Position.Floor)
	}

	vs.Floor = 7
	if frame := ms.Plan(vs); len(frame.Rooms) != 0 {
		t.Errorf("expected no rooms on floor 7, got %+v", frame.Rooms)
	}
}

func TestPlanRoomsCulled(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(20)
	frame := ms.Plan(vs)

	// 50x40 world pixels around the origin: the south gate is out of view
	if len(frame.Rooms) != 2 || frame.Rooms[0].RoomID != 1 || frame.Rooms[1].RoomID != 2 {
		t.Errorf("expected rooms 1 and 2, got %+v", frame.Rooms)
	}
	if frame.Culled == 0 {
		t.Error("expected culled rooms")
	}
}

func TestPlanClampsZoom(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(500)
	vs.Width, vs.Height = 0, 0

	frame := ms.Plan(vs)
	if frame.Zoom != mapper.MaxZoom {
		t.Errorf("expected zoom clamp, got %v", frame.Zoom)
	}
	if frame.ViewBox.Width() != DefaultViewWidth/mapper.MaxZoom {
		t.Errorf("expected default width, got %+v", frame.ViewBox)
	}
}

func TestViewWheelKeepsCursorPoint(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(4)
	vs.PanX, vs.PanY = -60, 25
	vs.Action = models.ActionWheel
	vs.CursorX, vs.CursorY = 120, 650
	vs.DeltaY = -100

	before := ms.Camera(vs, nil).ScreenToWorld(vs.CursorX, vs.CursorY)
	frame, err := ms.View(vs)
	if err != nil {
		t.Fatal(err)
	}
	if !nearly(frame.Zoom, 4.4) {
		t.Fatalf("expected zoom 4.4, got %v", frame.Zoom)
	}

	next := baseView(frame.Zoom)
	next.PanX, next.PanY = frame.PanX, frame.PanY
	after := ms.Camera(next, nil).ScreenToWorld(vs.CursorX, vs.CursorY)
	if !nearly(before.X, after.X) || !nearly(before.Y, after.Y) {
		t.Errorf("cursor point moved from %+v to %+v", before, after)
	}
}

func TestViewKeyZoom(t *testing.T) {
	ms := newTestMap(t)

	tests := []struct {
		name   string
		zoom   float64
		action string
		want   float64
	}{
		{"in", 1, models.ActionZoomIn, mapper.ZoomIn(1)},
		{"out", 1.3, models.ActionZoomOut, mapper.ZoomOut(1.3)},
		{"in at max", mapper.MaxZoom, models.ActionZoomIn, mapper.MaxZoom},
		{"out at min", mapper.MinZoom, models.ActionZoomOut, mapper.MinZoom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vs := baseView(tt.zoom)
			vs.Action = tt.action
			frame, err := ms.View(vs)
			if err != nil {
				t.Fatal(err)
			}
			if !nearly(frame.Zoom, tt.want) {
				t.Errorf("expected zoom %v, got %v", tt.want, frame.Zoom)
			}
			// centred zoom leaves the view centre on the current zone
			if !nearly(frame.PanX, 0) || !nearly(frame.PanY, 0) {
				t.Errorf("expected no pan, got (%v, %v)", frame.PanX, frame.PanY)
			}
		})
	}
}

func TestViewUnknownAction(t *testing.T) {
	ms := newTestMap(t)
	vs := baseView(1)
	vs.Action = "spin"
	if _, err := ms.View(vs); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}

	frame, err := ms.View(baseView(1))
	if err != nil || frame.Tier != mapper.DetailWorld {
		t.Errorf("plain view failed: %v %+v", err, frame)
	}
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
