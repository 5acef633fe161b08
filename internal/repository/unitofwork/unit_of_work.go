package unitofwork

import (
	"context"

	"assessment-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WorkspaceRepository() contract.WorkspaceRepository
	SlotRepository() contract.SlotRepository
}
