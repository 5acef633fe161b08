package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/repository/specification"
	"assessment-assistant-be/internal/repository/unitofwork"
	"assessment-assistant-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.WorkspaceRepository())
	assert.NotNil(t, uow.SlotRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Workspace Repository", func(t *testing.T) {
		count, err := uow.WorkspaceRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Workspace count: %d", count)
	})

	t.Run("Check Slot Repository", func(t *testing.T) {
		count, err := uow.SlotRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Persistence slot count: %d", count)
	})

	t.Run("Slot Upsert Round Trip", func(t *testing.T) {
		ctx := context.Background()
		workspaceId := uuid.New()

		err := uow.WorkspaceRepository().Create(ctx, &entity.Workspace{Id: workspaceId})
		assert.NoError(t, err)
		defer uow.WorkspaceRepository().Delete(ctx, workspaceId)
		defer uow.SlotRepository().DeleteAllByWorkspace(ctx, workspaceId)

		err = uow.SlotRepository().Upsert(ctx, workspaceId, "session", []byte(`{"currentModule":"requirements-analysis"}`))
		assert.NoError(t, err)

		// Second write to the same slot must replace, not duplicate.
		err = uow.SlotRepository().Upsert(ctx, workspaceId, "session", []byte(`{"currentModule":"interpretation"}`))
		assert.NoError(t, err)

		payload, err := uow.SlotRepository().Find(ctx, workspaceId, "session")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"currentModule":"interpretation"}`, string(payload))

		count, err := uow.SlotRepository().Count(ctx, specification.ByWorkspaceID{WorkspaceID: workspaceId})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Transactional Slot Writes", func(t *testing.T) {
		ctx := context.Background()
		workspaceId := uuid.New()

		txUow := uowFactory.NewUnitOfWork(ctx)
		err := txUow.Begin(ctx)
		assert.NoError(t, err)
		defer txUow.Rollback()

		err = txUow.WorkspaceRepository().Create(ctx, &entity.Workspace{Id: workspaceId})
		assert.NoError(t, err)

		err = txUow.SlotRepository().Upsert(ctx, workspaceId, "analyses", []byte(`[]`))
		assert.NoError(t, err)
		err = txUow.SlotRepository().Upsert(ctx, workspaceId, "model_pref", []byte(`{"selectedModel":"llama3"}`))
		assert.NoError(t, err)

		err = txUow.Commit()
		assert.NoError(t, err)

		defer uow.SlotRepository().DeleteAllByWorkspace(ctx, workspaceId)
		defer uow.WorkspaceRepository().Delete(ctx, workspaceId)

		slots, err := uow.SlotRepository().FindAll(ctx, workspaceId)
		assert.NoError(t, err)
		assert.Len(t, slots, 2)

		t.Log("Successfully wrote persistence slots in a transaction")
	})
}
