package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interpretation is the saved output of the interpretation module.
// AnalysisId is a true foreign key; AnalysisName and Requirements are
// denormalized snapshots taken at save time, deliberately not kept in
// sync with the parent analysis.
type Interpretation struct {
	Id             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	AnalysisId     *uuid.UUID    `json:"analysisId"`
	AnalysisName   string        `json:"analysisName"`
	Requirements   string        `json:"requirements"`
	Candidates     []Candidate   `json:"candidates"`
	Interpretation string        `json:"interpretation"`
	Chat           []ChatMessage `json:"chat"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
