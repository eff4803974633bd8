package models

// ViewState is the browser's current view. The server never stores it;
// every request carries the full state.
type ViewState struct {
	Zoom             float64  `json:"zoom"`
	PanX             float64  `json:"pan_x"`
	PanY             float64  `json:"pan_y"`
	Floor            int      `json:"floor"`
	CurrentZone      string   `json:"current_zone"`
	SelectedZone     string   `json:"selected_zone,omitempty"`
	Region           string   `json:"region,omitempty"` // "" or "all" shows every region
	VisitedZones     []string `json:"visited_zones,omitempty"`
	HighlightedZones []string `json:"highlighted_zones,omitempty"`
	SelectedRoom     int      `json:"selected_room,omitempty"`
	HighlightedRooms []int    `json:"highlighted_rooms,omitempty"`
	HighlightedMob   string   `json:"highlighted_mob,omitempty"`
	Width            float64  `json:"width"`
	Height           float64  `json:"height"`

	// Action is an optional zoom applied before the frame is planned.
	// Wheel zooms keep the world point under the cursor fixed; key zooms
	// keep the view centre fixed.
	Action  string  `json:"action,omitempty"`
	CursorX float64 `json:"cursor_x,omitempty"`
	CursorY float64 `json:"cursor_y,omitempty"`
	DeltaY  float64 `json:"delta_y,omitempty"`
}

// Zoom actions understood in ViewState.Action
const (
	ActionWheel   = "wheel"
	ActionZoomIn  = "zoom_in"
	ActionZoomOut = "zoom_out"
)
