package pgx

import (
	"context"
	"errors"
	"fmt"

	pgxv5 "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OFFIS-RIT/carekg/pkg/store"
)

// DBPool is the subset of *pgxpool.Pool used by PgxGraphStorage.
type DBPool interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgxv5.Row
}

const (
	sqlCreateTable = `CREATE TABLE IF NOT EXISTS kg_snapshots (
		key TEXT PRIMARY KEY,
		data BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	sqlUpsertSnapshot = `INSERT INTO kg_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at`
	sqlSelectSnapshot = `SELECT data FROM kg_snapshots WHERE key = $1`
)

// PgxGraphStorage stores encoded graphs in a PostgreSQL table.
type PgxGraphStorage struct {
	pool DBPool
}

// NewPgxGraphStorage verifies the connection and creates the snapshot table
// if it does not exist yet.
func NewPgxGraphStorage(ctx context.Context, pool DBPool) (*PgxGraphStorage, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, sqlCreateTable); err != nil {
		return nil, fmt.Errorf("create kg_snapshots table: %w", err)
	}
	return &PgxGraphStorage{pool: pool}, nil
}

// Connect opens a connection pool for databaseURL.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return pool, nil
}

func (s *PgxGraphStorage) SaveGraph(ctx context.Context, key string, data []byte) error {
	if _, err := s.pool.Exec(ctx, sqlUpsertSnapshot, key, data); err != nil {
		return fmt.Errorf("upsert snapshot %q: %w", key, err)
	}
	return nil
}

func (s *PgxGraphStorage) LoadGraph(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, sqlSelectSnapshot, key).Scan(&data)
	if errors.Is(err, pgxv5.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", store.ErrGraphNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("select snapshot %q: %w", key, err)
	}
	return data, nil
}
