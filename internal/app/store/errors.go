package store

import "errors"

// Sentinel errors of the access layer. Callers match them with errors.Is and
// the handler boundary maps them to the corresponding user-visible failure.
var (
	// ErrNotFound reports fewer rows matching a query than required,
	// including zero when exactly one was required.
	ErrNotFound = errors.New("not enough rows match the query")

	// ErrAmbiguous reports more rows matching a query than required.
	ErrAmbiguous = errors.New("too many rows match the query")

	// ErrUnavailable reports a transient store failure that persisted through
	// the single retry attempt.
	ErrUnavailable = errors.New("store unavailable")
)
