package controller

import (
	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExtractionController interface {
	RegisterRoutes(r fiber.Router)
	Extract(ctx *fiber.Ctx) error
}

type extractionController struct {
	service service.IExtractionService
}

func NewExtractionController(service service.IExtractionService) IExtractionController {
	return &extractionController{service: service}
}

func (c *extractionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/extraction/v1")
	h.Use(serverutils.WorkspaceMiddleware)
	h.Post("", c.Extract)
}

func (c *extractionController) Extract(ctx *fiber.Ctx) error {
	var req dto.ExtractionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	apiKey := ctx.Cookies(constant.CredentialCookieName)
	res, err := c.service.Extract(ctx.Context(), workspaceID(ctx), &req, apiKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success extract candidates", res))
}
