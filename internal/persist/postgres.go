package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgdb is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting it instead of *pgxpool.Pool lets integration tests pass
// a transaction that is rolled back after each test.
type pgdb interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is an Adapter that stores each collection as one row in the
// goose-migrated collections table. It suits hosts that want durable
// server-side storage instead of a local data directory.
type Postgres struct {
	db pgdb
}

// NewPostgres returns a Postgres adapter over the given connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewPostgres(db pgdb) *Postgres {
	return &Postgres{db: db}
}

// Load reads the collection row for key. A missing row means the collection
// has never been saved and is reported as ok=false.
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `SELECT data FROM collections WHERE key = @key`

	var data []byte
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("persist.Postgres.Load %s: %w", key, err)
	}
	return data, true, nil
}

// Save upserts the collection row for key.
func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	const q = `
		INSERT INTO collections (key, data, updated_at)
		VALUES (@key, @data, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`

	_, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "data": data})
	if err != nil {
		return fmt.Errorf("persist.Postgres.Save %s: %w", key, err)
	}
	return nil
}
