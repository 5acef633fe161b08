package controller

import (
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExportController interface {
	RegisterRoutes(r fiber.Router)
	Export(ctx *fiber.Ctx) error
}

type exportController struct {
	service service.IExportService
}

func NewExportController(service service.IExportService) IExportController {
	return &exportController{service: service}
}

func (c *exportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/export/v1")
	h.Use(serverutils.WorkspaceMiddleware)
	h.Post("", c.Export)
}

func (c *exportController) Export(ctx *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.Export(ctx.Context(), workspaceID(ctx), &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, res.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
	return ctx.Send(res.Blob)
}
