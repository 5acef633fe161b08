package controller

import (
	"assessment-assistant-be/internal/dto"
	"assessment-assistant-be/internal/entity"
	"assessment-assistant-be/internal/pkg/serverutils"
	"assessment-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.WorkspaceMiddleware)

	h.Get("", c.Get)
	h.Patch("", c.Update)
	h.Post("/reset", c.Reset)
	h.Post("/start-module", c.StartModule)
	h.Get("/next-module", c.NextModule)
	h.Get("/can-access/:module", c.CanAccess)
	h.Post("/model", c.SelectModel)

	h.Post("/candidates", c.AddCandidate)
	h.Patch("/candidates/:id", c.UpdateCandidate)
	h.Delete("/candidates/:id", c.RemoveCandidate)

	h.Get("/analyses", c.ListAnalyses)
	h.Post("/analyses", c.SaveAnalysis)
	h.Put("/analyses/:id", c.UpdateAnalysis)
	h.Patch("/analyses/:id", c.UpdateAnalysisDirect)
	h.Delete("/analyses/:id", c.DeleteAnalysis)
	h.Post("/analyses/:id/load", c.LoadAnalysis)

	h.Get("/interpretations", c.ListInterpretations)
	h.Post("/interpretations", c.SaveInterpretation)
	h.Put("/interpretations/:id", c.UpdateInterpretation)
	h.Patch("/interpretations/:id", c.UpdateInterpretationDirect)
	h.Delete("/interpretations/:id", c.DeleteInterpretation)
	h.Post("/interpretations/:id/load", c.LoadInterpretation)

	h.Get("/interviews", c.ListInterviews)
	h.Post("/interviews", c.SaveInterview)
	h.Put("/interviews/:id", c.UpdateInterview)
	h.Patch("/interviews/:id", c.UpdateInterviewDirect)
	h.Delete("/interviews/:id", c.DeleteInterview)
	h.Post("/interviews/:id/load", c.LoadInterview)

	h.Get("/onboardings", c.ListOnboardings)
	h.Post("/onboardings", c.SaveOnboarding)
	h.Put("/onboardings/:id", c.UpdateOnboarding)
	h.Patch("/onboardings/:id", c.UpdateOnboardingDirect)
	h.Delete("/onboardings/:id", c.DeleteOnboarding)
	h.Post("/onboardings/:id/load", c.LoadOnboarding)
}

// workspaceID reads the workspace id the middleware already validated;
// requests with a malformed claim never reach a handler.
func workspaceID(ctx *fiber.Ctx) uuid.UUID {
	widStr, _ := ctx.Locals("workspace_id").(string)
	wid, _ := uuid.Parse(widStr)
	return wid
}

// recordID parses the :id path parameter. A malformed id is a client
// error, not a lookup against the zero uuid.
func recordID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewValidationError("invalid record id")
	}
	return id, nil
}

// --- Session ---

func (c *sessionController) Get(ctx *fiber.Ctx) error {
	res, err := c.service.Get(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	var patch entity.SessionPatch
	if err := ctx.BodyParser(&patch); err != nil {
		return serverutils.NewValidationError("invalid session patch")
	}

	res, err := c.service.Update(ctx.Context(), workspaceID(ctx), patch)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *sessionController) Reset(ctx *fiber.Ctx) error {
	res, err := c.service.Reset(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success reset session", res))
}

func (c *sessionController) StartModule(ctx *fiber.Ctx) error {
	var req dto.StartModuleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartModule(ctx.Context(), workspaceID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success start module", res))
}

func (c *sessionController) NextModule(ctx *fiber.Ctx) error {
	res, err := c.service.NextModule(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get next module", res))
}

func (c *sessionController) CanAccess(ctx *fiber.Ctx) error {
	res, err := c.service.CanAccess(ctx.Context(), workspaceID(ctx), ctx.Params("module"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success check module access", res))
}

func (c *sessionController) SelectModel(ctx *fiber.Ctx) error {
	var req dto.SelectModelRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.SelectModel(ctx.Context(), workspaceID(ctx), req.Model); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success select model", nil))
}

// --- Candidates ---

func (c *sessionController) AddCandidate(ctx *fiber.Ctx) error {
	var req dto.AddCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddCandidate(ctx.Context(), workspaceID(ctx), req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add candidate", res))
}

func (c *sessionController) UpdateCandidate(ctx *fiber.Ctx) error {
	var req dto.UpdateCandidateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	err = c.service.UpdateCandidate(ctx.Context(), workspaceID(ctx), id, entity.CandidatePatch{
		Name:       req.Name,
		Dimensions: req.Dimensions,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update candidate", nil))
}

func (c *sessionController) RemoveCandidate(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.RemoveCandidate(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success remove candidate", nil))
}

// --- Analyses ---

func (c *sessionController) ListAnalyses(ctx *fiber.Ctx) error {
	res, err := c.service.ListAnalyses(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all analyses", res))
}

func (c *sessionController) SaveAnalysis(ctx *fiber.Ctx) error {
	var req dto.SaveRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveAnalysis(ctx.Context(), workspaceID(ctx), req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save analysis", res))
}

func (c *sessionController) UpdateAnalysis(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateAnalysis(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update analysis", nil))
}

func (c *sessionController) UpdateAnalysisDirect(ctx *fiber.Ctx) error {
	var req dto.UpdateAnalysisDirectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateAnalysisDirect(ctx.Context(), workspaceID(ctx), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update analysis", nil))
}

func (c *sessionController) DeleteAnalysis(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteAnalysis(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete analysis", nil))
}

func (c *sessionController) LoadAnalysis(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.LoadAnalysis(ctx.Context(), workspaceID(ctx), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFoundError("analysis not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load analysis", res))
}

// --- Interpretations ---

func (c *sessionController) ListInterpretations(ctx *fiber.Ctx) error {
	res, err := c.service.ListInterpretations(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all interpretations", res))
}

func (c *sessionController) SaveInterpretation(ctx *fiber.Ctx) error {
	var req dto.SaveRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveInterpretation(ctx.Context(), workspaceID(ctx), req.Name)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save interpretation", res))
}

func (c *sessionController) UpdateInterpretation(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateInterpretation(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update interpretation", nil))
}

func (c *sessionController) UpdateInterpretationDirect(ctx *fiber.Ctx) error {
	var req dto.UpdateInterpretationDirectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateInterpretationDirect(ctx.Context(), workspaceID(ctx), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update interpretation", nil))
}

func (c *sessionController) DeleteInterpretation(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteInterpretation(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete interpretation", nil))
}

func (c *sessionController) LoadInterpretation(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.LoadInterpretation(ctx.Context(), workspaceID(ctx), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFoundError("interpretation not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load interpretation", res))
}

// --- Interviews ---

func (c *sessionController) ListInterviews(ctx *fiber.Ctx) error {
	res, err := c.service.ListInterviews(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all interviews", res))
}

func (c *sessionController) SaveInterview(ctx *fiber.Ctx) error {
	var req dto.SaveGuideRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveInterview(ctx.Context(), workspaceID(ctx), req.Name, req.Guide)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save interview", res))
}

func (c *sessionController) UpdateInterview(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateInterview(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update interview", nil))
}

func (c *sessionController) UpdateInterviewDirect(ctx *fiber.Ctx) error {
	var req dto.UpdateGuideDirectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateInterviewDirect(ctx.Context(), workspaceID(ctx), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update interview", nil))
}

func (c *sessionController) DeleteInterview(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteInterview(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete interview", nil))
}

func (c *sessionController) LoadInterview(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.LoadInterview(ctx.Context(), workspaceID(ctx), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFoundError("interview not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load interview", res))
}

// --- Onboardings ---

func (c *sessionController) ListOnboardings(ctx *fiber.Ctx) error {
	res, err := c.service.ListOnboardings(ctx.Context(), workspaceID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get all onboardings", res))
}

func (c *sessionController) SaveOnboarding(ctx *fiber.Ctx) error {
	var req dto.SaveGuideRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveOnboarding(ctx.Context(), workspaceID(ctx), req.Name, req.Guide)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save onboarding", res))
}

func (c *sessionController) UpdateOnboarding(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateOnboarding(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update onboarding", nil))
}

func (c *sessionController) UpdateOnboardingDirect(ctx *fiber.Ctx) error {
	var req dto.UpdateGuideDirectRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.UpdateOnboardingDirect(ctx.Context(), workspaceID(ctx), id, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update onboarding", nil))
}

func (c *sessionController) DeleteOnboarding(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	if err := c.service.DeleteOnboarding(ctx.Context(), workspaceID(ctx), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete onboarding", nil))
}

func (c *sessionController) LoadOnboarding(ctx *fiber.Ctx) error {
	id, err := recordID(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.LoadOnboarding(ctx.Context(), workspaceID(ctx), id)
	if err != nil {
		return err
	}
	if res == nil {
		return serverutils.NewNotFoundError("onboarding not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Success load onboarding", res))
}
