package controller

import (
	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	SendStream(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Finalize(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Use(serverutils.WorkspaceMiddleware)
	h.Get("/:module", c.History)
	h.Post("/:module", c.Send)
	h.Post("/:module/stream", c.SendStream)
	h.Post("/:module/finalize", c.Finalize)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	apiKey := ctx.Cookies(constant.CredentialCookieName)
	res, err := c.service.Send(ctx.Context(), workspaceID(ctx), ctx.Params("module"), &req, apiKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) SendStream(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	apiKey := ctx.Cookies(constant.CredentialCookieName)
	res, err := c.service.SendStream(ctx.Context(), workspaceID(ctx), ctx.Params("module"), &req, apiKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), workspaceID(ctx), ctx.Params("module"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) Finalize(ctx *fiber.Ctx) error {
	var req dto.FinalizeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Finalize(ctx.Context(), workspaceID(ctx), ctx.Params("module"), req.Text)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success finalize module", res))
}
