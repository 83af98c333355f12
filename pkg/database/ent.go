package database

import (
	"context"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/Alijeyrad/crm_backend/config"
	"github.com/Alijeyrad/crm_backend/internal/repo"
)

// NewEntClient opens the database and wraps it in an ent client. The
// returned DB shares the connection pool and serves health checks.
func NewEntClient(cfg config.DatabaseConfig) (*repo.Client, *DB, error) {
	db, err := Open(context.Background(), FromCentralConfig(cfg))
	if err != nil {
		return nil, nil, err
	}

	var drv dialect.Driver = entsql.OpenDB(dialect.Postgres, db.conn)
	if db.cfg.Debug {
		drv = dialect.DebugWithContext(drv, func(ctx context.Context, args ...any) {
			slog.DebugContext(ctx, "ent query", "query", fmt.Sprint(args...))
		})
	}

	return repo.NewClient(repo.Driver(drv)), db, nil
}

func MigrateEnt(ctx context.Context, client *repo.Client) error {
	return client.Schema.Create(ctx)
}
