package hub

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/soar/padkeys/internal/scancode"
)

const statusInterval = 5 * time.Second

// Broadcaster listens for synthesized key events and forwards them to the
// hub, interleaving periodic backend status snapshots.
type Broadcaster struct {
	hub    *Hub
	logger *slog.Logger
	events <-chan scancode.Event
	status func() Status
	seq    int64
}

func NewBroadcaster(h *Hub, events <-chan scancode.Event, status func() Status) *Broadcaster {
	return &Broadcaster{
		hub:    h,
		logger: h.logger,
		events: events,
		status: status,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				return
			}
			b.seq++
			b.send(NewEventMessage(b.seq, ev.Code.String(), ev.Dir.String()))

		case <-ticker.C:
			b.seq++
			b.send(NewStatusMessage(b.seq, b.status()))
		}
	}
}

// SendInitialState sends a status snapshot to a newly connected client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.seq++
	data, err := json.Marshal(NewStatusMessage(b.seq, b.status()))
	if err != nil {
		b.logger.Error("marshaling initial status", "error", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) send(msg *WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		b.logger.Error("marshaling message", "error", err)
		return
	}
	b.hub.Broadcast(data)
}
