package dto

import (
	"assessment-assistant-be/internal/entity"
)

type SendChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendChatResponse struct {
	Reply   entity.ChatMessage   `json:"reply"`
	History []entity.ChatMessage `json:"history"`
}

// FinalizeRequest writes a module's result text into the session
// (requirements, interpretation, interview or onboarding guide).
type FinalizeRequest struct {
	Text string `json:"text" validate:"required"`
}
