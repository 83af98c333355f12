package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/crm_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
)

// PipelineHandler serves pipelines and their stages.
type PipelineHandler struct {
	svc cases.Service
}

func NewPipelineHandler(svc cases.Service) *PipelineHandler {
	return &PipelineHandler{svc: svc}
}

// GET /api/cases/pipelines/
func (h *PipelineHandler) List(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}

	ps, err := h.svc.ListPipelines(c.Context(), actor)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, ps)
}

// GET /api/cases/pipelines/:id/
func (h *PipelineHandler) Get(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	p, err := h.svc.GetPipeline(c.Context(), actor, id)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, p)
}

// POST /api/cases/pipelines/
func (h *PipelineHandler) Create(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}

	body := cases.CreatePipelineRequest{CreateDefaultStages: true}
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	p, err := h.svc.CreatePipeline(c.Context(), actor, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return created(c, p)
}

// PUT /api/cases/pipelines/:id/
func (h *PipelineHandler) Update(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	var body cases.UpdatePipelineRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	p, err := h.svc.UpdatePipeline(c.Context(), actor, id, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/cases/pipelines/:id/
func (h *PipelineHandler) Delete(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	if err := h.svc.DeletePipeline(c.Context(), actor, id); err != nil {
		return mapCaseError(c, err)
	}
	return noContent(c)
}

// POST /api/cases/pipelines/:pipeline_id/renumber/
func (h *PipelineHandler) Renumber(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "pipeline_id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	n, err := h.svc.RenumberPipeline(c.Context(), actor, id)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, fiber.Map{"renumbered": n})
}

// ---------------------------------------------------------------------------
// Stages
// ---------------------------------------------------------------------------

// POST /api/cases/pipelines/:pipeline_id/stages/
func (h *PipelineHandler) CreateStage(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	pipelineID, valid := paramUUID(c, "pipeline_id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	var body cases.CreateStageRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	st, err := h.svc.CreateStage(c.Context(), actor, pipelineID, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return created(c, st)
}

// POST /api/cases/pipelines/:pipeline_id/stages/reorder/
func (h *PipelineHandler) ReorderStages(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	pipelineID, valid := paramUUID(c, "pipeline_id")
	if !valid {
		return badRequest(c, "invalid pipeline id")
	}

	var body cases.ReorderStagesRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	stages, err := h.svc.ReorderStages(c.Context(), actor, pipelineID, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, stages)
}

// PUT /api/cases/stages/:id/
func (h *PipelineHandler) UpdateStage(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid stage id")
	}

	var body cases.UpdateStageRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	st, err := h.svc.UpdateStage(c.Context(), actor, id, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, st)
}

// DELETE /api/cases/stages/:id/
func (h *PipelineHandler) DeleteStage(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	id, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid stage id")
	}

	if err := h.svc.DeleteStage(c.Context(), actor, id); err != nil {
		return mapCaseError(c, err)
	}
	return noContent(c)
}
