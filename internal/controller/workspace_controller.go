package controller

import (
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWorkspaceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type workspaceController struct {
	service service.IWorkspaceService
}

func NewWorkspaceController(service service.IWorkspaceService) IWorkspaceController {
	return &workspaceController{service: service}
}

func (c *workspaceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/workspace/v1")
	h.Post("", c.Create) // unauthenticated: this is where the token comes from
	h.Get("", serverutils.WorkspaceMiddleware, c.Status)
}

func (c *workspaceController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create workspace", res))
}

func (c *workspaceController) Status(ctx *fiber.Ctx) error {
	widStr, _ := ctx.Locals("workspace_id").(string)
	wid, _ := uuid.Parse(widStr)

	res, err := c.service.Status(ctx.Context(), wid)
	if err != nil {
		return err
	}

	// opportunistic liveness marker, ignore failures
	_ = c.service.Touch(ctx.Context(), wid)

	return ctx.JSON(serverutils.SuccessResponse("Success get workspace", res))
}
