package entity

// RenderPayload - platform-neutral view of a session handed to the messaging layer.
type RenderPayload struct {
	SessionKey   string            `json:"session_key"`
	Board        [BoardSize]string `json:"board"`
	Status       Status            `json:"status"`
	Players      [2]Player         `json:"players"`
	TurnPlayerID string            `json:"turn_player_id,omitempty"`
	WinnerID     string            `json:"winner_id,omitempty"`
	Stats        []PlayerStats     `json:"stats,omitempty"`
}

func (that *RenderPayload) IsTerminal() bool {
	return that.Status != StatusInProgress
}

// MessageHandle - where a session's board was rendered on the chat platform.
type MessageHandle struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
}
