package errs

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError_KnownCodes(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{"invalid params", ErrInvalidParams, http.StatusBadRequest},
		{"unsupported media type", ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"rate limit", ErrRateLimitExceeded, http.StatusTooManyRequests},
		{"not found", ErrNotFound, http.StatusNotFound},
		{"ambiguous", ErrAmbiguousResult, http.StatusNotAcceptable},
		{"user referenced", ErrUserReferenced, http.StatusConflict},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"not post owner", ErrNotPostOwner, http.StatusForbidden},
		{"unknown", ErrUnknown, http.StatusInternalServerError},
		{"store unavailable", ErrStoreUnavailable, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			customErr := NewError(tc.code)

			require.NotNil(t, customErr)
			assert.Equal(t, tc.code, customErr.Code)
			assert.Equal(t, tc.wantStatus, customErr.Status)
			assert.NotEmpty(t, customErr.Message)
		})
	}
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	customErr := NewError(9999)

	require.NotNil(t, customErr)
	assert.Equal(t, ErrUnknown, customErr.Code)
	assert.Equal(t, http.StatusInternalServerError, customErr.Status)
}

func TestNewError_ReturnsCopy(t *testing.T) {
	first := NewError(ErrNotFound)
	first.Message = "mutated"

	second := NewError(ErrNotFound)
	assert.NotEqual(t, "mutated", second.Message)
}

func TestCustomError_Error(t *testing.T) {
	customErr := NewError(ErrNotFound)
	assert.Contains(t, customErr.Error(), "2001")
	assert.Contains(t, customErr.Error(), "404")
}
