package hub

import "time"

// Status is a point-in-time summary of the active input backend.
type Status struct {
	Backend    string `json:"backend"` // "sdl" or "fallback"
	Devices    int    `json:"devices"`
	HasDevices bool   `json:"hasDevices"`
	Native     bool   `json:"native"`
}

// WSMessage is a server-to-client diagnostics message.
type WSMessage struct {
	Type      string  `json:"type"`      // "event" or "status"
	Seq       int64   `json:"seq"`       // sequence number for ordering
	Timestamp int64   `json:"timestamp"` // unix milliseconds
	Code      string  `json:"code,omitempty"`
	Dir       string  `json:"dir,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// NewEventMessage wraps one synthesized key event.
func NewEventMessage(seq int64, code, dir string) *WSMessage {
	return &WSMessage{
		Type:      "event",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Code:      code,
		Dir:       dir,
	}
}

// NewStatusMessage wraps a backend status snapshot.
func NewStatusMessage(seq int64, status Status) *WSMessage {
	return &WSMessage{
		Type:      "status",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Status:    &status,
	}
}

// ClientMessage is a message sent from the client to the server. "key"
// messages inject a simulated press/release through the fallback backend.
type ClientMessage struct {
	Type    string `json:"type"`
	Key     string `json:"key,omitempty"`
	Pressed bool   `json:"pressed,omitempty"`
}
