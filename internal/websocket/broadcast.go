package websocket

import (
	"encoding/json"
	"time"

	"DBDashboard/internal/dashboard"
	"DBDashboard/internal/pkg/logger"
)

// SnapshotMessage is the payload pushed to dashboard clients
type SnapshotMessage struct {
	Event     string             `json:"event"`
	Snapshot  dashboard.Snapshot `json:"snapshot"`
	Timestamp string             `json:"timestamp"`
}

// EncodeSnapshot builds the wire form of a snapshot message
func EncodeSnapshot(event string, snap dashboard.Snapshot) ([]byte, error) {
	return json.Marshal(SnapshotMessage{
		Event:     event,
		Snapshot:  snap,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// BroadcastSnapshot sends a snapshot to all connected clients
func (h *Handler) BroadcastSnapshot(event string, snap dashboard.Snapshot) {
	data, err := EncodeSnapshot(event, snap)
	if err != nil {
		logger.Error("Failed to marshal dashboard snapshot for WebSocket broadcast",
			logger.Err(err))
		return
	}
	h.Broadcast(data)
}

// Attach subscribes the handler to a session so every transition is pushed.
// The returned function detaches it.
func (h *Handler) Attach(session *dashboard.Session) func() {
	return session.Subscribe(func(event dashboard.Event, snap dashboard.Snapshot) {
		h.BroadcastSnapshot(event.Name(), snap)
	})
}
