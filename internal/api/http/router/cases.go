package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/crm_backend/internal/api/http/handler"
)

func (r *Router) registerCaseRoutes(
	api fiber.Router,
	caseH *handler.CaseHandler,
	pipelineH *handler.PipelineHandler,
) {
	cs := api.Group("/cases")

	// Static segments go first so they are not taken for a case id.
	cs.Get("/kanban", caseH.Kanban)

	pipelines := cs.Group("/pipelines")
	pipelines.Get("/", pipelineH.List)
	pipelines.Post("/", pipelineH.Create)
	pipelines.Get("/:id", pipelineH.Get)
	pipelines.Put("/:id", pipelineH.Update)
	pipelines.Delete("/:id", pipelineH.Delete)
	pipelines.Post("/:pipeline_id/stages", pipelineH.CreateStage)
	pipelines.Post("/:pipeline_id/stages/reorder", pipelineH.ReorderStages)
	pipelines.Post("/:pipeline_id/renumber", pipelineH.Renumber)

	stages := cs.Group("/stages")
	stages.Put("/:id", pipelineH.UpdateStage)
	stages.Delete("/:id", pipelineH.DeleteStage)

	cs.Post("/", caseH.Create)
	cs.Get("/:id", caseH.Get)
	cs.Patch("/:id/move", caseH.Move)
}
