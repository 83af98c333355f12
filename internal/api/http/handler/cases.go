package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/crm_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
)

type CaseHandler struct {
	svc cases.Service
}

func NewCaseHandler(svc cases.Service) *CaseHandler {
	return &CaseHandler{svc: svc}
}

func mapCaseError(c fiber.Ctx, err error) error {
	var (
		verr *cases.ValidationError
		rerr *cases.RuleError
	)
	switch {
	case errors.As(err, &verr):
		return validationFailed(c, verr.Fields)
	case errors.As(err, &rerr):
		return ruleViolation(c, rerr.Msg, rerr.Count)
	case errors.Is(err, cases.ErrCaseNotFound),
		errors.Is(err, cases.ErrPipelineNotFound),
		errors.Is(err, cases.ErrStageNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, cases.ErrAdminRequired),
		errors.Is(err, cases.ErrCaseAccessDenied),
		errors.Is(err, cases.ErrPermissionDenied):
		return forbidden(c, err.Error())
	default:
		slog.ErrorContext(c.Context(), "cases: request failed",
			"method", c.Method(), "path", c.Path(), "error", err)
		return internalError(c)
	}
}

// GET /api/cases/kanban/
func (h *CaseHandler) Kanban(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}

	req, errs := boardQuery(c)
	if errs != nil {
		return validationFailed(c, errs)
	}

	board, err := h.svc.Board(c.Context(), actor, req)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, board)
}

// PATCH /api/cases/:id/move/
func (h *CaseHandler) Move(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	caseID, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid case id")
	}

	var body cases.MoveRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	card, err := h.svc.Move(c.Context(), actor, caseID, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, card)
}

// POST /api/cases/
func (h *CaseHandler) Create(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}

	var body cases.CreateCaseRequest
	if err := c.Bind().JSON(&body); err != nil {
		return bindError(c, err)
	}

	card, err := h.svc.CreateCase(c.Context(), actor, body)
	if err != nil {
		return mapCaseError(c, err)
	}
	return created(c, card)
}

// GET /api/cases/:id/
func (h *CaseHandler) Get(c fiber.Ctx) error {
	actor, found := middleware.ActorFromFiber(c)
	if !found {
		return unauthorized(c)
	}
	caseID, valid := paramUUID(c, "id")
	if !valid {
		return badRequest(c, "invalid case id")
	}

	card, err := h.svc.GetCase(c.Context(), actor, caseID)
	if err != nil {
		return mapCaseError(c, err)
	}
	return ok(c, card)
}
