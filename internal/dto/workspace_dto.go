package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkspaceResponse struct {
	Id    uuid.UUID `json:"id"`
	Token string    `json:"token"`
}

type WorkspaceStatusResponse struct {
	Id         uuid.UUID  `json:"id"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastSeenAt *time.Time `json:"lastSeenAt"`
}
