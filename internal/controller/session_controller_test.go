package controller

import (
	"net/http/httptest"
	"testing"

	"assessment-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordIDRejectsMalformedId(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Get("/records/:id", func(ctx *fiber.Ctx) error {
		id, err := recordID(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(fiber.Map{"id": id.String()})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/records/kein-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRecordIDParsesValidId(t *testing.T) {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	var got uuid.UUID
	app.Get("/records/:id", func(ctx *fiber.Ctx) error {
		id, err := recordID(ctx)
		if err != nil {
			return err
		}
		got = id
		return ctx.SendStatus(fiber.StatusOK)
	})

	want := uuid.New()
	resp, err := app.Test(httptest.NewRequest("GET", "/records/"+want.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, want, got)
}
