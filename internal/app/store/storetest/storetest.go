// Package storetest provides in-memory stand-ins for the store's database
// handles, so service tests can exercise transaction boundaries without a
// live pool.
package storetest

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB implements store.DB. Queries are answered with an error because service
// tests route all data access through mocked repositories; only the
// transaction lifecycle is observed.
type DB struct {
	// BeginErr, when set, is returned from Begin.
	BeginErr error

	// Commits counts committed transactions.
	Commits int

	// Rollbacks counts rollback calls, including the deferred rollback that
	// follows a successful commit.
	Rollbacks int
}

func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("storetest: direct queries are not supported")
}

func (d *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("storetest: direct queries are not supported")
}

func (d *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.BeginErr != nil {
		return nil, d.BeginErr
	}
	return &Tx{db: d}, nil
}

// Tx is the pgx.Tx returned by DB.Begin.
type Tx struct {
	db *DB
}

func (t *Tx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *Tx) Commit(ctx context.Context) error {
	t.db.Commits++
	return nil
}

func (t *Tx) Rollback(ctx context.Context) error {
	t.db.Rollbacks++
	return nil
}

func (t *Tx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("storetest: CopyFrom is not supported")
}

func (t *Tx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (t *Tx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (t *Tx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, errors.New("storetest: Prepare is not supported")
}

func (t *Tx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("storetest: direct queries are not supported")
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (t *Tx) Conn() *pgx.Conn { return nil }
