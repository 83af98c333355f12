package app

import (
	"go.uber.org/fx"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/service/cases"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
	"github.com/Alijeyrad/crm_backend/pkg/events"
	pasetotoken "github.com/Alijeyrad/crm_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePolicy,
		ProvideCaseService,
		ProvidePasetoManager,
	),
)

func ProvidePolicy(authz authorize.IAuthorization) *cases.Policy {
	return cases.NewPolicy(authz)
}

func ProvideCaseService(st store.Store, policy *cases.Policy, pub events.Publisher, cfg *config.Config) cases.Service {
	return cases.New(st, policy, pub, cfg.Kanban)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
