package entity

import (
	"github.com/google/uuid"
)

// Candidate is a person being assessed. Dimensions always holds exactly
// the nine canonical keys with integer values in [1,7].
type Candidate struct {
	Id         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Dimensions map[string]int `json:"dimensions"`
}

// CandidatePatch carries a partial candidate update. Nil fields are left
// untouched; dimension entries are merged key-by-key.
type CandidatePatch struct {
	Name       *string        `json:"name,omitempty"`
	Dimensions map[string]int `json:"dimensions,omitempty"`
}
