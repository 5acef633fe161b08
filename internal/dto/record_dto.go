package dto

import (
	"github.com/google/uuid"
)

type SaveRecordRequest struct {
	Name string `json:"name" validate:"required"`
}

// SaveGuideRecordRequest saves an interview or onboarding. A non-empty
// guide replaces the session's guide text before the snapshot is taken.
type SaveGuideRecordRequest struct {
	Name  string `json:"name" validate:"required"`
	Guide string `json:"guide"`
}

type RecordIdResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateAnalysisDirectRequest struct {
	Name         *string `json:"name"`
	Requirements *string `json:"requirements"`
}

type UpdateInterpretationDirectRequest struct {
	Name           *string `json:"name"`
	Interpretation *string `json:"interpretation"`
}

type UpdateGuideDirectRequest struct {
	Name  *string `json:"name"`
	Guide *string `json:"guide"`
}
