package entity

// Player - platform user id plus a display label used only for rendering.
type Player struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}
