package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name     string
		preds    []Predicate
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "no predicates",
			preds:    nil,
			wantSQL:  "SELECT id, name FROM widgets",
			wantArgs: nil,
		},
		{
			name:     "single predicate",
			preds:    []Predicate{Eq("id", int64(7))},
			wantSQL:  "SELECT id, name FROM widgets WHERE id = $1",
			wantArgs: []any{int64(7)},
		},
		{
			name:     "predicates are AND-combined in order",
			preds:    []Predicate{Eq("name", "a"), Eq("id", int64(2))},
			wantSQL:  "SELECT id, name FROM widgets WHERE name = $1 AND id = $2",
			wantArgs: []any{"a", int64(2)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sql, args := buildSelect("widgets", []string{"id", "name"}, tc.preds)
			assert.Equal(t, tc.wantSQL, sql)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildInsert(t *testing.T) {
	sql := buildInsert("widgets", []string{"name", "size"}, []string{"id", "name", "size", "created_at"})
	assert.Equal(t,
		"INSERT INTO widgets (name, size) VALUES ($1, $2) RETURNING id, name, size, created_at",
		sql,
	)
}

func TestBuildDelete(t *testing.T) {
	sql, args := buildDelete("widgets", []Predicate{Eq("id", int64(3))})
	assert.Equal(t, "DELETE FROM widgets WHERE id = $1", sql)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestAssertCount(t *testing.T) {
	tests := []struct {
		name     string
		actual   int
		expected int
		wantErr  error
	}{
		{"any count allows zero", 0, AnyCount, nil},
		{"any count allows many", 9, AnyCount, nil},
		{"exact match", 1, 1, nil},
		{"zero when one required", 0, 1, ErrNotFound},
		{"one when two required", 1, 2, ErrNotFound},
		{"two when one required", 2, 1, ErrAmbiguous},
		{"many when one required", 5, 1, ErrAmbiguous},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := assertCount(tc.actual, tc.expected)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
