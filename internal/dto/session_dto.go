package dto

import (
	"github.com/google/uuid"

	"assessment-assistant-be/internal/entity"
)

// SessionResponse is the wizard state as the client sees it. HasApiKey
// and SelectedModel travel as explicit flags; the session entity never
// serializes them itself.
type SessionResponse struct {
	Session       entity.Session `json:"session"`
	HasApiKey     bool           `json:"hasApiKey"`
	SelectedModel string         `json:"selectedModel,omitempty"`
}

type StartModuleRequest struct {
	Module            string     `json:"module" validate:"required"`
	IsStandardProcess bool       `json:"isStandardProcess"`
	KeepData          bool       `json:"keepData"`
	AnalysisId        *uuid.UUID `json:"analysisId"`
	InterpretationId  *uuid.UUID `json:"interpretationId"`
	InterviewId       *uuid.UUID `json:"interviewId"`
	OnboardingId      *uuid.UUID `json:"onboardingId"`
}

type NextModuleResponse struct {
	Module string `json:"module,omitempty"`
	Ok     bool   `json:"ok"`
}

type CanAccessResponse struct {
	Module  string `json:"module"`
	Allowed bool   `json:"allowed"`
}

type SelectModelRequest struct {
	Model string `json:"model" validate:"required"`
}
