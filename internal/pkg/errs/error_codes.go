/*
Package errs provides custom error types and application-level error code constants.

These codes identify specific business or system failures both internally and
in responses sent to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates extra content after valid JSON data in the body.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Entity Lookup and Integrity Errors
const (
	// ErrNotFound indicates that fewer entities matched a query than required.
	ErrNotFound = 2001

	// ErrAmbiguousResult indicates that more entities matched a query than required.
	ErrAmbiguousResult = 2002

	// ErrUserReferenced indicates a user cannot be deleted while posts reference it.
	ErrUserReferenced = 2003
)

// 3xxx: Authentication and Authorization Errors
const (
	// ErrUnauthorized indicates a missing, malformed, or unverifiable bearer credential.
	ErrUnauthorized = 3001

	// ErrInvalidCredentials indicates that the supplied name/password pair is wrong.
	ErrInvalidCredentials = 3002

	// ErrNotPostOwner indicates the acting user may not create posts for another user.
	ErrNotPostOwner = 3003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified server internal error.
	ErrUnknown = 5000

	// ErrStoreUnavailable indicates a transient store failure that persisted
	// through the retry attempt.
	ErrStoreUnavailable = 5001
)
