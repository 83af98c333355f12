package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/api/http/handler"
	"github.com/Alijeyrad/crm_backend/internal/api/http/middleware"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
	pasetotoken "github.com/Alijeyrad/crm_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg       *config.Config
	Redis     *goredis.Client `optional:"true"`
	Store     store.Store
	CaseSvc   cases.Service
	PasetoMgr *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Middlewares
	var sessions goredis.Cmdable
	if r.p.Redis != nil && r.p.Cfg.Authentication.SessionCheck {
		sessions = r.p.Redis
	}
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, sessions)
	orgHeader := middleware.OrgHeader(r.p.Store)

	// 3. Handlers
	caseH := handler.NewCaseHandler(r.p.CaseSvc)
	pipelineH := handler.NewPipelineHandler(r.p.CaseSvc)

	api := app.Group("/api", authRequired, orgHeader)

	r.registerCaseRoutes(api, caseH, pipelineH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
