package events

import "time"

// Event is the envelope every in-process event satisfies.
type Event interface {
	// EventType returns the event's unique code, e.g. "CHAT_EXCHANGE_CREATED".
	EventType() string

	// Payload returns the event's data.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation services publish. Fields stay exported
// so the envelope survives a JSON round trip over the bus.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
