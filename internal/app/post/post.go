/*
Package post contains the Post entity, its persistence, and the post service.
*/
package post

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"postboard/internal/app/store"
)

// MaxNameLength bounds the name column (varchar(255)). Content is unbounded.
const MaxNameLength = 255

// ErrInvalidInput indicates the post input failed schema constraints.
var ErrInvalidInput = errors.New("invalid post input")

// Post represents a stored post row. ID and CreatedAt are assigned by the
// store on insert, never by the caller.
type Post struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Content   string    `db:"content" json:"content"`
	UserID    int64     `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Input is the caller-supplied part of a post.
type Input struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
}

// Validate enforces the schema constraints on the input fields.
func (in Input) Validate() error {
	nameLen := utf8.RuneCountInString(in.Name)
	if nameLen < 1 || nameLen > MaxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, MaxNameLength)
	}

	if in.Content == "" {
		return fmt.Errorf("%w: content must not be empty", ErrInvalidInput)
	}

	if in.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be a positive integer", ErrInvalidInput)
	}

	return nil
}

// Desc describes the posts table for the generic access layer.
var Desc = store.Descriptor[Post]{
	Table:         "posts",
	Columns:       []string{"id", "name", "content", "user_id", "created_at"},
	InsertColumns: []string{"name", "content", "user_id"},
	InsertValues: func(p Post) []any {
		return []any{p.Name, p.Content, p.UserID}
	},
}
