package controller

import (
	"context"
	"strings"

	"assessment-assistant-be/internal/constant"
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICredentialController interface {
	RegisterRoutes(r fiber.Router)
	Set(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// credentialController keeps the model API key in an HTTP-only cookie.
// The key itself never reaches the session store or the database; the
// session only carries the boolean flag.
type credentialController struct {
	sessionService service.ISessionService
	secureCookies  bool
}

func NewCredentialController(sessionService service.ISessionService, secureCookies bool) ICredentialController {
	return &credentialController{
		sessionService: sessionService,
		secureCookies:  secureCookies,
	}
}

func (c *credentialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/credential/v1")
	h.Use(serverutils.WorkspaceMiddleware)
	h.Post("", c.Set)
	h.Get("", c.Status)
	h.Delete("", c.Delete)
}

func (c *credentialController) setApiKeyFlag(ctx context.Context, workspaceId uuid.UUID, has bool) error {
	store, err := c.sessionService.Store(ctx, workspaceId)
	if err != nil {
		return err
	}
	store.SetHasApiKey(has)
	return nil
}

func (c *credentialController) Set(ctx *fiber.Ctx) error {
	var req dto.SetCredentialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	key := strings.TrimSpace(req.ApiKey)
	if strings.ContainsAny(key, " \t\n") {
		return serverutils.NewValidationError("api key must not contain whitespace")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     constant.CredentialCookieName,
		Value:    key,
		MaxAge:   constant.CredentialCookieMaxAge,
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	if err := c.setApiKeyFlag(ctx.Context(), workspaceID(ctx), true); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success set credential", dto.CredentialStatusResponse{HasApiKey: true}))
}

func (c *credentialController) Status(ctx *fiber.Ctx) error {
	has := ctx.Cookies(constant.CredentialCookieName) != ""
	return ctx.JSON(serverutils.SuccessResponse("Success get credential status", dto.CredentialStatusResponse{HasApiKey: has}))
}

func (c *credentialController) Delete(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     constant.CredentialCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	if err := c.setApiKeyFlag(ctx.Context(), workspaceID(ctx), false); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete credential", dto.CredentialStatusResponse{HasApiKey: false}))
}
