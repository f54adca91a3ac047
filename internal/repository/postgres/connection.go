// Package postgres implements the delivery journal against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"productboard-gitlab-relay/config"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// ErrNotStarted is returned by journal calls made before OnStart or after OnStop.
var ErrNotStarted = errors.New("postgres journal is not started")

// Postgres wraps a pgx pool and configuration.
type Postgres struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.PostgresConfig

	mu sync.RWMutex
	db *pgxpool.Pool
}

// New creates a Postgres journal instance. Nothing is opened until OnStart.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *Postgres {
	return &Postgres{
		baseCtx: ctx,
		log:     log.Named("repo.postgres"),
		cfg:     cfg.Postgres,
	}
}

// OnStart applies migrations and opens the connection pool.
func (p *Postgres) OnStart(_ context.Context) error {
	version, err := p.migrate()
	if err != nil {
		return err
	}

	pool, err := p.openPool()
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.db = pool
	p.mu.Unlock()
	p.log.Infow("postgres journal ready", "host", p.cfg.Host, "port", p.cfg.Port, "schema_version", version)
	return nil
}

// OnStop closes pool connections. Journal calls made afterwards get ErrNotStarted.
func (p *Postgres) OnStop(_ context.Context) error {
	p.mu.Lock()
	pool := p.db
	p.db = nil
	p.mu.Unlock()

	if pool != nil {
		pool.Close()
	}
	return nil
}

func (p *Postgres) pool() (*pgxpool.Pool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		return nil, ErrNotStarted
	}
	return p.db, nil
}

func (p *Postgres) openPool() (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(p.cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	if p.cfg.MaxConns > 0 {
		poolCfg.MaxConns = p.cfg.MaxConns
	}
	if p.cfg.MinConns > 0 {
		poolCfg.MinConns = p.cfg.MinConns
	}

	ctx, cancel := context.WithTimeout(p.baseCtx, p.cfg.QueryTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping pool: %w", err)
	}
	return pool, nil
}

// migrate runs goose over database/sql (lib/pq) and returns the schema version.
func (p *Postgres) migrate() (int64, error) {
	sqlDB, err := sql.Open("postgres", p.cfg.DSN())
	if err != nil {
		return 0, fmt.Errorf("open sql: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return 0, fmt.Errorf("migrate dialect: %w", err)
	}

	ctx, cancel := context.WithTimeout(p.baseCtx, p.cfg.MigrateTimeout)
	defer cancel()

	if err := goose.UpContext(ctx, sqlDB, p.cfg.MigrationsDir); err != nil {
		return 0, fmt.Errorf("migrate: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return 0, fmt.Errorf("migrate version: %w", err)
	}
	return version, nil
}
