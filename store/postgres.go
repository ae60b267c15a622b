package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/etnz/pcquote"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS pcq_snapshots (
	key        TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PgStore keeps snapshots in the pcq_snapshots table.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore connects to the database and creates the table if needed.
func NewPgStore(ctx context.Context, databaseURL string) (*PgStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if _, err := pool.Exec(ctx, createSnapshotsTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not create pcq_snapshots: %w", err)
	}
	return &PgStore{pool: pool}, nil
}

// Load reads the snapshot stored under the key.
func (s *PgStore) Load(ctx context.Context, key string) (pcquote.Snapshot, error) {
	var body []byte
	err := s.pool.QueryRow(ctx, `SELECT body FROM pcq_snapshots WHERE key = $1`, key).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	snap, err := pcquote.DecodeSnapshot(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not load snapshot %q: %w", key, err)
	}
	return snap, nil
}

// Save inserts or replaces the snapshot.
func (s *PgStore) Save(ctx context.Context, key string, snap pcquote.Snapshot) error {
	var buf bytes.Buffer
	if err := pcquote.EncodeSnapshot(&buf, snap); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO pcq_snapshots (key, body, updated_at) VALUES ($1, $2::jsonb, NOW())
		 ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`,
		key, buf.String(),
	)
	return err
}

// Delete removes the snapshot row.
func (s *PgStore) Delete(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM pcq_snapshots WHERE key = $1`, key)
	return err
}

// Close releases the connection pool.
func (s *PgStore) Close() error {
	s.pool.Close()
	return nil
}
