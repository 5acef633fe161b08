package dto

import (
	"assessment-assistant-be/internal/entity"
)

type ExtractionRequest struct {
	FileData string `json:"fileData" validate:"required"`
	FileName string `json:"fileName" validate:"required"`
}

type ExtractedCandidate struct {
	Candidate  entity.Candidate `json:"candidate"`
	Confidence string           `json:"confidence"` // high | medium | low
}

type ExtractionResponse struct {
	Candidates []ExtractedCandidate `json:"candidates"`
	Warnings   []string             `json:"warnings,omitempty"`
}
