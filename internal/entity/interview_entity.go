package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interview is the saved output of the interview module. The
// interpretation link is optional enrichment: an interview is valid with
// InterpretationId nil and Interpretation empty.
type Interview struct {
	Id               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	AnalysisId       *uuid.UUID    `json:"analysisId"`
	AnalysisName     string        `json:"analysisName"`
	Requirements     string        `json:"requirements"`
	InterpretationId *uuid.UUID    `json:"interpretationId"`
	Interpretation   string        `json:"interpretation"`
	Candidates       []Candidate   `json:"candidates"`
	Guide            string        `json:"guide"`
	Chat             []ChatMessage `json:"chat"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
