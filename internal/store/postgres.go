package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymtracker/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=postgres_mocks_test.go -package=store_test

type pgxDB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createKVTableSQL = `
CREATE TABLE IF NOT EXISTS public.kv_store
(
    key        VARCHAR PRIMARY KEY,
    value      BYTEA       NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

type PostgresStore struct {
	db pgxDB
}

func NewPostgresStore(db pgxDB) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

// Migrate creates the key-value table if it is not there yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createKVTableSQL); err != nil {
		return fmt.Errorf("create kv_store table: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.get")
	span.SetAttributes(attribute.String("key", key))
	defer func() {
		if errors.Is(err, ErrNotFound) {
			tracing.EndSpanWithErrCheck(span, nil)
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var value []byte
	row := s.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select [%s]: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.set")
	span.SetAttributes(attribute.String("key", key), attribute.Int("size", len(value)))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if value == nil {
		value = []byte{}
	}

	tag, err := s.db.Exec(
		ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert [%s]: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("upsert [%s]: no rows affected", key)
	}
	return nil
}

func (s *PostgresStore) Del(ctx context.Context, keys ...string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.postgres.del")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if len(keys) == 0 {
		return nil
	}

	if _, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete %v: %w", keys, err)
	}
	return nil
}
