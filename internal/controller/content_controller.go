package controller

import (
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContentController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

// Help articles are public: no workspace token required.
type contentController struct {
	service service.IContentService
}

func NewContentController(service service.IContentService) IContentController {
	return &contentController{service: service}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/content/v1")
	h.Get("", c.List)
	h.Get("/search", c.Search)
	h.Get("/:slug", c.Show)
}

func (c *contentController) List(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get all articles", c.service.List()))
}

func (c *contentController) Search(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success search articles", c.service.Search(ctx.Query("q"))))
}

func (c *contentController) Show(ctx *fiber.Ctx) error {
	article, err := c.service.Get(ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get article", article))
}
