package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

const connectTimeout = 10 * time.Second

type Postgres interface {
	Pool() *pgxpool.Pool
	Close()
}

type Config struct {
	Host      string
	Port      uint16
	User      string
	Password  string
	Name      string
	SSLMode   string
	MaxConns  int32
	MinConns  int32
	Migration Migration
}

type Migration struct {
	Path      string
	AutoApply bool
}

type postgres struct {
	pool *pgxpool.Pool
}

func New(cfg *Config) (Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn("postgres", cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Migration.AutoApply {
		if err := applyMigrations(cfg); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	return &postgres{pool: pool}, nil
}

func (p *postgres) Pool() *pgxpool.Pool {
	return p.pool
}

func (p *postgres) Close() {
	p.pool.Close()
}

func applyMigrations(cfg *Config) error {
	m, err := migrate.New("file://"+cfg.Migration.Path, dsn("pgx5", cfg))
	if err != nil {
		return fmt.Errorf("failed to init migrate: %w", err)
	}

	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func dsn(scheme string, cfg *Config) string {
	return fmt.Sprintf("%s://%s:%s@%s:%d/%s?sslmode=%s",
		scheme, cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode,
	)
}
