package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/store"
	"github.com/Alijeyrad/crm_backend/internal/store/entstore"
	"github.com/Alijeyrad/crm_backend/internal/store/memstore"
	"github.com/Alijeyrad/crm_backend/pkg/authorize"
	"github.com/Alijeyrad/crm_backend/pkg/database"
	"github.com/Alijeyrad/crm_backend/pkg/events"
	"github.com/Alijeyrad/crm_backend/pkg/observability"
	redispkg "github.com/Alijeyrad/crm_backend/pkg/redis"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideStore),
	fx.Provide(ProvideRedis),
	fx.Provide(ProvideAuthorization),
	fx.Provide(ProvideOTel),
	fx.Provide(ProvideNatsClient),
	fx.Provide(ProvidePublisher),
)

// ProvideStore opens the store selected by kanban.store.
func ProvideStore(lc fx.Lifecycle, cfg *config.Config) (store.Store, error) {
	if cfg.Kanban.Store == config.StoreMemory {
		ms := memstore.New()
		if cfg.Kanban.Demo.Enabled {
			if err := SeedDemo(context.Background(), ms, cfg.Kanban.Demo); err != nil {
				return nil, fmt.Errorf("seed demo data: %w", err)
			}
		}
		slog.Warn("using the in-memory store, data is lost on restart")
		return ms, nil
	}

	client, db, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Ping(ctx); err != nil {
				return fmt.Errorf("database ping: %w", err)
			}
			if cfg.Database.Migrations.AutoMigrate {
				slog.Info("running schema migrations")
				return database.MigrateEnt(ctx, client)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing main database connection")
			return client.Close()
		},
	})
	return entstore.New(client), nil
}

// ProvideRedis connects to Redis when an address is configured. Without one
// the session check and the rate limiter are off.
func ProvideRedis(lc fx.Lifecycle, cfg *config.Config) (*goredis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	rdb, err := redispkg.NewRedisFromCentral(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("closing Redis connection")
			return rdb.Close()
		},
	})
	return rdb, nil
}

func ProvideAuthorization(lc fx.Lifecycle, cfg *config.Config) (authorize.IAuthorization, error) {
	acfg := authorize.FromCentralConfig(cfg.Authorization)

	var (
		baseAuth authorize.IAuthorization
		err      error
	)
	if cfg.Kanban.Store == config.StoreMemory {
		enforcer, merr := authorize.NewMemoryEnforcer(acfg.ModelPath)
		if merr != nil {
			return nil, merr
		}
		baseAuth, err = authorize.NewAuthorization(enforcer)
		if err != nil {
			return nil, err
		}
	} else {
		dsn := database.NewDSN(cfg.CasbinDatabase)
		enforcer, cleanup, eerr := authorize.NewEnforcer(acfg, dsn)
		if eerr != nil {
			return nil, eerr
		}
		baseAuth, err = authorize.NewAuthorization(enforcer)
		if err != nil {
			cleanup(context.Background())
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				slog.Debug("cleaning up Casbin enforcer")
				cleanup(ctx)
				return nil
			},
		})
	}

	if !acfg.EnableAudit {
		return baseAuth, nil
	}
	return authorize.NewAuditedAuthorization(baseAuth, slog.Default()), nil
}

// ProvideNatsClient connects to NATS when enabled. A nil connection turns
// event publishing and the workers off.
func ProvideNatsClient(lc fx.Lifecycle, cfg *config.Config) (*nats.Conn, error) {
	if !cfg.Nats.Enabled {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.Nats.URL, nats.Name(cfg.Observability.ServiceName))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("draining NATS connection")
			return nc.Drain()
		},
	})
	return nc, nil
}

func ProvidePublisher(nc *nats.Conn, cfg *config.Config) events.Publisher {
	if nc == nil {
		return events.NopPublisher{}
	}
	return events.NewNatsPublisher(nc, cfg.Nats.SubjectPrefix)
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.FromCentralConfig(cfg))
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
