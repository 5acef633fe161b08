package events

import (
	"time"

	"github.com/google/uuid"
)

// Record lifecycle event types. Subscribers receive these over the
// in-process bus and, best effort, over NATS.
const (
	RecordSavedEvent   = "RECORD_SAVED"
	RecordUpdatedEvent = "RECORD_UPDATED"
	RecordDeletedEvent = "RECORD_DELETED"
)

// NewRecordEvent builds the outbound envelope for a record lifecycle
// change. The event type is one of the constants above.
func NewRecordEvent(eventType, kind string, workspaceId, recordId uuid.UUID, name string, occurredAt time.Time) BaseEvent {
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"kind":        kind,
			"workspaceId": workspaceId.String(),
			"recordId":    recordId.String(),
			"name":        name,
		},
		OccurredAt: occurredAt,
	}
}
