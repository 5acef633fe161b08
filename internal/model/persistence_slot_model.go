package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PersistenceSlot stores one independently persisted JSON payload of a
// workspace: the saved-record collections, the live session snapshot and
// the model preference each get their own row.
type PersistenceSlot struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	WorkspaceId uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_workspace_slot"`
	Slot        string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_workspace_slot"`
	Payload     datatypes.JSON `gorm:"not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (PersistenceSlot) TableName() string {
	return "persistence_slots"
}
