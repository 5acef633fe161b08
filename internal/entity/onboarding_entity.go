package entity

import (
	"time"

	"github.com/google/uuid"
)

// Onboarding is the saved output of the onboarding module. It is sourced
// from an interpretation (mandatory at save time) with an optional
// interview link; deleting either source leaves the onboarding intact.
type Onboarding struct {
	Id               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	AnalysisId       *uuid.UUID    `json:"analysisId"`
	AnalysisName     string        `json:"analysisName"`
	Requirements     string        `json:"requirements"`
	InterpretationId *uuid.UUID    `json:"interpretationId"`
	Interpretation   string        `json:"interpretation"`
	InterviewId      *uuid.UUID    `json:"interviewId"`
	InterviewGuide   string        `json:"interviewGuide"`
	Candidates       []Candidate   `json:"candidates"`
	Guide            string        `json:"guide"`
	Chat             []ChatMessage `json:"chat"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
