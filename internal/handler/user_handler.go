/*
Package handler provides the HTTP handlers and routing setup for postboard.

This file contains the handlers for the users resource.
*/
package handler

import (
	"net/http"

	"postboard/internal/app/user"
	"postboard/internal/pkg/req"
	"postboard/internal/pkg/resp"
)

// HandleCreateUser creates a new user. 201 with the persisted user on success.
func HandleCreateUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input user.Input
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		created, err := deps.Users.Create(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondCreated(w, r, created)
	}
}

// HandleListUsers returns all users. An empty list is a valid response.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Users.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, users)
	}
}

// HandleGetUser returns the user with the given id. 404 if absent, 406 if
// the id matches more than one row.
func HandleGetUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		found, err := deps.Users.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, found)
	}
}

// HandleDeleteUser deletes the user with the given id. 204 on success, 409
// while posts still reference the user.
func HandleDeleteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Users.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondNoContent(w, r)
	}
}
