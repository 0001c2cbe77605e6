/*
Package handler provides the HTTP handlers and routing setup for postboard.

This file contains the token issuance endpoint: a stored user's name and
password are exchanged for a signed bearer token.
*/
package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"postboard/internal/app/store"
	"postboard/internal/pkg/auth/jwt"
	"postboard/internal/pkg/errs"
	"postboard/internal/pkg/logx"
	"postboard/internal/pkg/req"
	"postboard/internal/pkg/resp"
)

// TokenInput is the credential pair exchanged for a bearer token.
type TokenInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// HandleIssueToken verifies the supplied credentials against the stored user
// and returns a signed bearer token. Unknown names and wrong passwords get
// the same response.
func HandleIssueToken(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input TokenInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		principal, err := deps.Users.GetByName(r.Context(), input.Name)
		if err != nil {
			if errors.Is(err, store.ErrUnavailable) {
				respondServiceError(w, r, err)
				return
			}

			logx.Warn("Token request for unknown user.", "name", input.Name)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		if subtle.ConstantTimeCompare([]byte(input.Password), []byte(principal.Password)) != 1 {
			logx.Warn("Token request with wrong password.", "name", input.Name)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		payload := &jwt.Payload{
			Name:     principal.Name,
			Password: principal.Password,
		}

		token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.TokenLifetime)
		if err != nil {
			logx.Error(err, "Failed to generate bearer token", "name", input.Name)
			resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"token": token,
		})
	}
}
