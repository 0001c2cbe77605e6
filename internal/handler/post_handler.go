/*
Package handler provides the HTTP handlers and routing setup for postboard.

This file contains the handlers for the posts resource. Mutating operations
trigger a feed broadcast of the updated post list.
*/
package handler

import (
	"net/http"

	"postboard/internal/app/post"
	"postboard/internal/pkg/auth/jwt"
	"postboard/internal/pkg/req"
	"postboard/internal/pkg/resp"
)

// HandleCreatePost creates a new post on behalf of the authenticated
// principal. 201 with the persisted post on success.
func HandleCreatePost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input post.Input
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		actingName := jwt.PrincipalFromContext(r)

		created, err := deps.Posts.Create(r.Context(), input, actingName)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		deps.Feed.NotifyChanged(r.Context())

		resp.RespondCreated(w, r, created)
	}
}

// HandleListPosts returns all posts. An empty list is a valid response.
func HandleListPosts(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := deps.Posts.List(r.Context())
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, posts)
	}
}

// HandleGetPost returns the post with the given id. 404 if absent, 406 if
// the id matches more than one row.
func HandleGetPost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		found, err := deps.Posts.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		resp.RespondSuccess(w, r, found)
	}
}

// HandleDeletePost deletes the post with the given id. 204 on success.
func HandleDeletePost(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := idParam(r)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := deps.Posts.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, err)
			return
		}

		deps.Feed.NotifyChanged(r.Context())

		resp.RespondNoContent(w, r)
	}
}
