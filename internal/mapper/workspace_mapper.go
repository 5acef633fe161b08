package mapper

import (
	"time"

	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/model"
)

type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) ToEntity(w *model.Workspace) *entity.Workspace {
	if w == nil {
		return nil
	}

	var lastSeen *time.Time
	if !w.LastSeenAt.IsZero() {
		t := w.LastSeenAt
		lastSeen = &t
	}

	return &entity.Workspace{
		Id:         w.Id,
		CreatedAt:  w.CreatedAt,
		LastSeenAt: lastSeen,
	}
}

func (m *WorkspaceMapper) ToModel(w *entity.Workspace) *model.Workspace {
	if w == nil {
		return nil
	}

	var lastSeen time.Time
	if w.LastSeenAt != nil {
		lastSeen = *w.LastSeenAt
	}

	return &model.Workspace{
		Id:         w.Id,
		CreatedAt:  w.CreatedAt,
		LastSeenAt: lastSeen,
	}
}
