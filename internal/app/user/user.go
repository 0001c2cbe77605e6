/*
Package user contains the User entity, its persistence, and the user service.
*/
package user

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"postboard/internal/app/store"
)

// MaxNameLength bounds the name column (varchar(255)).
const MaxNameLength = 255

// MaxPasswordLength bounds the password column (varchar(255)).
const MaxPasswordLength = 255

// ErrInvalidInput indicates the user input failed schema constraints.
var ErrInvalidInput = errors.New("invalid user input")

// User represents a stored user row. ID and CreatedAt are assigned by the
// store on insert, never by the caller.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Password  string    `db:"password" json:"password"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Input is the caller-supplied part of a user.
type Input struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Validate enforces the schema constraints on the input fields.
func (in Input) Validate() error {
	nameLen := utf8.RuneCountInString(in.Name)
	if nameLen < 1 || nameLen > MaxNameLength {
		return fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, MaxNameLength)
	}

	passwordLen := utf8.RuneCountInString(in.Password)
	if passwordLen < 1 || passwordLen > MaxPasswordLength {
		return fmt.Errorf("%w: password must be 1-%d characters", ErrInvalidInput, MaxPasswordLength)
	}

	return nil
}

// Desc describes the users table for the generic access layer.
var Desc = store.Descriptor[User]{
	Table:         "users",
	Columns:       []string{"id", "name", "password", "created_at"},
	InsertColumns: []string{"name", "password"},
	InsertValues: func(u User) []any {
		return []any{u.Name, u.Password}
	},
}
