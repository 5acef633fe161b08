package persister

import (
	"context"

	"assessment-assistant-be/internal/repository/unitofwork"
	"assessment-assistant-be/pkg/assessment"

	"github.com/google/uuid"
)

// SlotPersisterImpl writes store snapshots through the slot repository.
// It satisfies assessment.Persister; the store calls it from background
// goroutines and logs any error it returns.
type SlotPersisterImpl struct {
	factory unitofwork.RepositoryFactory
}

func NewSlotPersister(factory unitofwork.RepositoryFactory) assessment.Persister {
	return &SlotPersisterImpl{
		factory: factory,
	}
}

func (p *SlotPersisterImpl) SaveSlot(ctx context.Context, workspaceId uuid.UUID, slot string, payload []byte) error {
	uow := p.factory.NewUnitOfWork(ctx)
	return uow.SlotRepository().Upsert(ctx, workspaceId, slot, payload)
}

func (p *SlotPersisterImpl) DeleteSlot(ctx context.Context, workspaceId uuid.UUID, slot string) error {
	uow := p.factory.NewUnitOfWork(ctx)
	return uow.SlotRepository().Delete(ctx, workspaceId, slot)
}
