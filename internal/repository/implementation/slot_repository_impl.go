package implementation

import (
	"context"
	"errors"

	"assessment-assistant-be/internal/model"
	"assessment-assistant-be/internal/repository/contract"
	"assessment-assistant-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotRepositoryImpl struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) contract.SlotRepository {
	return &SlotRepositoryImpl{db: db}
}

func (r *SlotRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SlotRepositoryImpl) Upsert(ctx context.Context, workspaceId uuid.UUID, slot string, payload []byte) error {
	m := model.PersistenceSlot{
		Id:          uuid.New(),
		WorkspaceId: workspaceId,
		Slot:        slot,
		Payload:     datatypes.JSON(payload),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "workspace_id"}, {Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&m).Error
}

func (r *SlotRepositoryImpl) Find(ctx context.Context, workspaceId uuid.UUID, slot string) ([]byte, error) {
	var m model.PersistenceSlot
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND slot = ?", workspaceId, slot).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(m.Payload), nil
}

func (r *SlotRepositoryImpl) FindAll(ctx context.Context, workspaceId uuid.UUID) (map[string][]byte, error) {
	var models []model.PersistenceSlot
	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	slots := make(map[string][]byte, len(models))
	for _, m := range models {
		slots[m.Slot] = []byte(m.Payload)
	}
	return slots, nil
}

func (r *SlotRepositoryImpl) Delete(ctx context.Context, workspaceId uuid.UUID, slot string) error {
	return r.db.WithContext(ctx).
		Where("workspace_id = ? AND slot = ?", workspaceId, slot).
		Delete(&model.PersistenceSlot{}).Error
}

func (r *SlotRepositoryImpl) DeleteAllByWorkspace(ctx context.Context, workspaceId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceId).
		Delete(&model.PersistenceSlot{}).Error
}

func (r *SlotRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PersistenceSlot{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
