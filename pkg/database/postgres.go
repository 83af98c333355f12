package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

const pingTimeout = 5 * time.Second

// DB is the shared postgres pool. ent and the readiness hook both use it.
type DB struct {
	conn *sql.DB
	cfg  Config
}

func buildDSN(host string, port int, user, password, dbname, sslmode string) string {
	pairs := []string{
		"host=" + host,
		fmt.Sprintf("port=%d", port),
		"user=" + user,
		"password=" + quoteDSNValue(password),
		"dbname=" + dbname,
		"sslmode=" + sslmode,
	}
	return strings.Join(pairs, " ")
}

// quoteDSNValue single-quotes v when it is empty or holds a space, quote or backslash.
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v) + "'"
}

// Open connects with cfg's pool limits and fails unless the server answers a ping.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres %s/%s: %w", cfg.Host, cfg.DBName, err)
	}
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	db := &DB{conn: conn, cfg: cfg}
	if err := db.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres %s/%s: %w", db.cfg.Host, db.cfg.DBName, err)
	}
	return nil
}
