package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// OptionalUUID distinguishes "field absent" from "field set to null" in a
// patch, so a selection pointer can be cleared via an explicit null.
type OptionalUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (o *OptionalUUID) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		o.Value = nil
		return nil
	}
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

func (o OptionalUUID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Session is the single live working copy of an assessment run. Saved
// records are independent snapshots; editing a loaded session never
// mutates a saved record until an explicit save/update call.
//
// HasApiKey is derived status only (the credential itself lives in an
// HTTP-only cookie) and SelectedModel is a cross-session preference with
// its own persistence slot; both are excluded from the session snapshot.
type Session struct {
	CurrentModule     string `json:"currentModule"`
	IsStandardProcess bool   `json:"isStandardProcess"`

	SelectedAnalysisId       *uuid.UUID `json:"selectedAnalysisId"`
	SelectedInterpretationId *uuid.UUID `json:"selectedInterpretationId"`
	SelectedInterviewId      *uuid.UUID `json:"selectedInterviewId"`
	SelectedOnboardingId     *uuid.UUID `json:"selectedOnboardingId"`

	AnalysisName string `json:"analysisName"`
	Requirements string `json:"requirements"`

	RequirementsChat   []ChatMessage `json:"requirementsChat"`
	InterpretationChat []ChatMessage `json:"interpretationChat"`
	InterviewChat      []ChatMessage `json:"interviewChat"`
	OnboardingChat     []ChatMessage `json:"onboardingChat"`

	Candidates []Candidate `json:"candidates"`

	Interpretation  string `json:"interpretation"`
	InterviewGuide  string `json:"interviewGuide"`
	OnboardingGuide string `json:"onboardingGuide"`

	HasApiKey     bool   `json:"-"`
	SelectedModel string `json:"-"`
}

// SessionPatch is a shallow-merge update: only non-nil fields are applied.
// The store performs no semantic validation; callers own correctness.
type SessionPatch struct {
	CurrentModule     *string `json:"currentModule,omitempty"`
	IsStandardProcess *bool   `json:"isStandardProcess,omitempty"`

	SelectedAnalysisId       OptionalUUID `json:"selectedAnalysisId,omitempty"`
	SelectedInterpretationId OptionalUUID `json:"selectedInterpretationId,omitempty"`
	SelectedInterviewId      OptionalUUID `json:"selectedInterviewId,omitempty"`
	SelectedOnboardingId     OptionalUUID `json:"selectedOnboardingId,omitempty"`

	AnalysisName *string `json:"analysisName,omitempty"`
	Requirements *string `json:"requirements,omitempty"`

	RequirementsChat   *[]ChatMessage `json:"requirementsChat,omitempty"`
	InterpretationChat *[]ChatMessage `json:"interpretationChat,omitempty"`
	InterviewChat      *[]ChatMessage `json:"interviewChat,omitempty"`
	OnboardingChat     *[]ChatMessage `json:"onboardingChat,omitempty"`

	Candidates *[]Candidate `json:"candidates,omitempty"`

	Interpretation  *string `json:"interpretation,omitempty"`
	InterviewGuide  *string `json:"interviewGuide,omitempty"`
	OnboardingGuide *string `json:"onboardingGuide,omitempty"`
}
