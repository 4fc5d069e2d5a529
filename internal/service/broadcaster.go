package service

// Broadcaster pushes session events to WebSocket subscribers (avoids
// import cycle with the transport layer).
type Broadcaster interface {
	BroadcastToSession(sessionID string, msgType string, payload interface{})
}
