package entity

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is the saved output of the requirements module. Deleting an
// analysis cascades to interpretations and interviews that reference it.
type Analysis struct {
	Id           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Requirements string        `json:"requirements"`
	Chat         []ChatMessage `json:"chat"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}
