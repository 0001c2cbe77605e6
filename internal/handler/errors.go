package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"postboard/internal/app/post"
	"postboard/internal/app/store"
	"postboard/internal/app/user"
	"postboard/internal/pkg/errs"
	"postboard/internal/pkg/logx"
	"postboard/internal/pkg/resp"
)

// respondServiceError translates domain and store errors into the API's
// error envelope. Unclassified errors become a 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		resp.RespondError(w, r, errs.NewError(errs.ErrNotFound))

	case errors.Is(err, store.ErrAmbiguous):
		resp.RespondError(w, r, errs.NewError(errs.ErrAmbiguousResult))

	case errors.Is(err, store.ErrUnavailable):
		logx.Error(err, "Store unavailable after retry")
		resp.RespondError(w, r, errs.NewError(errs.ErrStoreUnavailable))

	case errors.Is(err, user.ErrReferenced):
		resp.RespondError(w, r, errs.NewError(errs.ErrUserReferenced))

	case errors.Is(err, post.ErrNotOwner):
		resp.RespondError(w, r, errs.NewError(errs.ErrNotPostOwner))

	case errors.Is(err, user.ErrInvalidInput), errors.Is(err, post.ErrInvalidInput):
		resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))

	default:
		logx.Error(err, "Unhandled service error")
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
	}
}

// idParam parses the {id} URL parameter, which must be a positive integer.
func idParam(r *http.Request) (int64, *errs.CustomError) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewError(errs.ErrInvalidParams)
	}

	return id, nil
}
