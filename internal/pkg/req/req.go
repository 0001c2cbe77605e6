/*
Package req provides helpers for HTTP request parsing and data binding.

It encapsulates strict JSON binding for request bodies: the Content-Type must
be application/json, unknown fields are rejected, and trailing content after
the JSON document is an error.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"postboard/internal/pkg/errs"
)

// BindJSON attempts to bind the JSON data from the HTTP request body to the
// destination struct dst.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
