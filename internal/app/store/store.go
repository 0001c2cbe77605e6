/*
Package store is the generic data access layer.

It provides fetch/insert/remove operations parameterized by an entity
descriptor and equality predicates, with expected-result-count assertions and
a single retry on transient store failures. Centralizing the count assertions
here gives every caller uniform not-found/ambiguous semantics, and
centralizing the retry makes every caller resilient to the same class of
transient hiccups without duplicating backoff logic.
*/
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// AnyCount disables the result-count assertion on Fetch: all matches are
// returned, including zero.
const AnyCount = -1

// Querier is the query subset of pgx satisfied by both *pgxpool.Pool and
// pgx.Tx, so the caller decides the transaction boundary.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DB adds transaction control to Querier. *pgxpool.Pool satisfies it.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Descriptor ties an entity type to its table and columns. Row values are
// mapped onto T's db-tagged fields by column name.
type Descriptor[T any] struct {
	// Table is the relation name.
	Table string

	// Columns is the select list. It must cover every db-tagged field of T.
	Columns []string

	// InsertColumns are the caller-supplied columns. Identity and created_at
	// are assigned by the store, never by the caller.
	InsertColumns []string

	// InsertValues returns the values for InsertColumns, in order.
	InsertValues func(T) []any
}

// Predicate is an equality condition on a single column. Multiple predicates
// are combined with AND.
type Predicate struct {
	Column string
	Value  any
}

// Eq builds an equality predicate.
func Eq(column string, value any) Predicate {
	return Predicate{Column: column, Value: value}
}

// Fetch executes a read query matching all predicates. If expected is
// AnyCount, all matches are returned. Otherwise the result count is asserted:
// fewer rows than expected fail with ErrNotFound, more with ErrAmbiguous.
func Fetch[T any](ctx context.Context, q Querier, d Descriptor[T], preds []Predicate, expected int) ([]T, error) {
	query, args := buildSelect(d.Table, d.Columns, preds)

	results, err := withRetry(ctx, func(ctx context.Context) ([]T, error) {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, pgx.RowToStructByName[T])
	})
	if err != nil {
		return nil, err
	}

	if err := assertCount(len(results), expected); err != nil {
		return nil, err
	}

	return results, nil
}

// Insert persists the entity and returns the stored row with the
// store-assigned identity and creation timestamp populated. The caller is
// responsible for committing the enclosing transaction.
func Insert[T any](ctx context.Context, q Querier, d Descriptor[T], entity T) (T, error) {
	query := buildInsert(d.Table, d.InsertColumns, d.Columns)
	args := d.InsertValues(entity)

	return withRetry(ctx, func(ctx context.Context) (T, error) {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			var zero T
			return zero, err
		}
		return pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	})
}

// Remove deletes the single row identified by the predicates. The lookup runs
// first with an expected count of one, so deleting zero or multiple matches
// fails exactly as a fetch would and nothing is deleted.
func Remove[T any](ctx context.Context, q Querier, d Descriptor[T], preds []Predicate) error {
	if _, err := Fetch(ctx, q, d, preds, 1); err != nil {
		return err
	}

	query, args := buildDelete(d.Table, preds)

	_, err := withRetry(ctx, func(ctx context.Context) (pgconn.CommandTag, error) {
		return q.Exec(ctx, query, args...)
	})
	return err
}

// assertCount enforces the expected-result-count contract.
func assertCount(actual, expected int) error {
	switch {
	case expected == AnyCount || actual == expected:
		return nil
	case actual < expected:
		return fmt.Errorf("%w: expected %d, found %d", ErrNotFound, expected, actual)
	default:
		return fmt.Errorf("%w: expected %d, found %d", ErrAmbiguous, expected, actual)
	}
}

func buildSelect(table string, columns []string, preds []Predicate) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(table)

	args := appendWhere(&b, preds)

	return b.String(), args
}

func buildInsert(table string, insertColumns, returning []string) string {
	placeholders := make([]string, len(insertColumns))
	for i := range insertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(returning, ", "),
	)
}

func buildDelete(table string, preds []Predicate) (string, []any) {
	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(table)

	args := appendWhere(&b, preds)

	return b.String(), args
}

// appendWhere writes the WHERE clause for the predicates and returns the
// positional arguments. No predicates means no WHERE clause.
func appendWhere(b *strings.Builder, preds []Predicate) []any {
	if len(preds) == 0 {
		return nil
	}

	args := make([]any, 0, len(preds))

	b.WriteString(" WHERE ")
	for i, p := range preds {
		if i > 0 {
			b.WriteString(" AND ")
		}
		fmt.Fprintf(b, "%s = $%d", p.Column, i+1)
		args = append(args, p.Value)
	}

	return args
}
