package snapshot

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresStore struct {
	db *pgxpool.Pool
}

func newPostgresStore(ctx context.Context, dsn string) (*postgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	s := &postgresStore{db: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *postgresStore) ensureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS content_snapshots (
		key        TEXT PRIMARY KEY,
		data       BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	_, err := s.db.Exec(ctx, query)
	return err
}

func (s *postgresStore) Save(ctx context.Context, key string, data []byte) error {
	query := `INSERT INTO content_snapshots (key, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = $2, updated_at = now()`
	_, err := s.db.Exec(ctx, query, key, data)
	return err
}

func (s *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(ctx, `SELECT data FROM content_snapshots WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *postgresStore) Close() error {
	s.db.Close()
	return nil
}
