package events

import "time"

// Event is the outbound contract for record lifecycle notifications.
// Implementations carry one change to a workspace's saved records.
type Event interface {
	// EventType returns the lifecycle code, e.g. "RECORD_SAVED".
	EventType() string

	// Payload returns the record fields attached to the event (kind,
	// workspaceId, recordId, name).
	Payload() map[string]interface{}

	// Timestamp returns when the change happened.
	Timestamp() time.Time
}

// BaseEvent is the plain value implementation used for every record
// lifecycle event; build one via NewRecordEvent.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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
