package contract

import (
	"context"

	"assessment-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SlotRepository stores the independently persisted JSON payloads of a
// workspace. Upsert semantics: one row per (workspace, slot).
type SlotRepository interface {
	Upsert(ctx context.Context, workspaceId uuid.UUID, slot string, payload []byte) error
	Find(ctx context.Context, workspaceId uuid.UUID, slot string) ([]byte, error)
	FindAll(ctx context.Context, workspaceId uuid.UUID) (map[string][]byte, error)
	Delete(ctx context.Context, workspaceId uuid.UUID, slot string) error
	DeleteAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
