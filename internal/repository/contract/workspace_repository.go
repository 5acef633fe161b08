package contract

import (
	"context"

	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *entity.Workspace) error
	Touch(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workspace, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
