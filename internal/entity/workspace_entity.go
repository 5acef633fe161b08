package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is an anonymous tenant: one per browser, identified by the
// workspace token. All persistence slots hang off a workspace.
type Workspace struct {
	Id         uuid.UUID
	CreatedAt  time.Time
	LastSeenAt *time.Time
}
