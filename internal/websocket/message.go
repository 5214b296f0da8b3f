package websocket

import "time"

// Message is a one-way server-to-client notification. The event channel
// carries no client commands; game actions go through the HTTP API.
type Message struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func NewMessage(msgType string, payload any) *Message {
	return &Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}
