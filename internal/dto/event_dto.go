package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecordEventMessage travels over the in-process bus when a saved
// record changes. The consumer fans it out to websocket clients and,
// best effort, to NATS.
type RecordEventMessage struct {
	Event       string    `json:"event"`
	Kind        string    `json:"kind"`
	WorkspaceId uuid.UUID `json:"workspaceId"`
	RecordId    uuid.UUID `json:"recordId"`
	Name        string    `json:"name"`
	OccurredAt  time.Time `json:"occurredAt"`
}
