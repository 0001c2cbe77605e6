/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the CustomError corresponding to every application error code.
// Every entry carries an explicit HTTP status: the API contract distinguishes
// 404 (too few matches) from 406 (too many) from 500 (store failure).
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusUnsupportedMediaType},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Request body is not valid JSON.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Entity Lookup and Integrity Errors
	ErrNotFound:        {Code: ErrNotFound, Message: "Not enough entities match the query.", Status: http.StatusNotFound},
	ErrAmbiguousResult: {Code: ErrAmbiguousResult, Message: "Too many entities match the query.", Status: http.StatusNotAcceptable},
	ErrUserReferenced:  {Code: ErrUserReferenced, Message: "User still has posts and cannot be deleted.", Status: http.StatusConflict},

	// 3xxx: Authentication and Authorization Errors
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Could not validate credentials.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect name or password.", Status: http.StatusUnauthorized},
	ErrNotPostOwner:       {Code: ErrNotPostOwner, Message: "Posts may only be created for your own user.", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown:          {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStoreUnavailable: {Code: ErrStoreUnavailable, Message: "Connection to the database failed.", Status: http.StatusInternalServerError},
}
