package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"postboard/internal/pkg/auth/jwt"
	"postboard/internal/pkg/errs"
	"postboard/internal/pkg/logx"
	"postboard/internal/pkg/resp"
)

// RequireAuth enforces bearer-token authentication. The token's claims carry
// the principal's name and password, both checked against the stored user
// row. Every failure mode — missing header, malformed token, unknown
// principal, mismatched secret — yields the same 401 so the response leaks
// nothing about which stage failed.
func RequireAuth(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			claims, err := jwt.ParseToken(parts[1], deps.Config.JWTSecret)
			if err != nil || claims.Name == "" {
				logx.Warn("Rejected request with invalid bearer token.")
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			principal, err := deps.Users.GetByName(r.Context(), claims.Name)
			if err != nil {
				logx.Warn("Rejected request for unknown principal.", "name", claims.Name)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			nameOK := subtle.ConstantTimeCompare([]byte(claims.Name), []byte(principal.Name)) == 1
			passwordOK := subtle.ConstantTimeCompare([]byte(claims.Password), []byte(principal.Password)) == 1
			if !nameOK || !passwordOK {
				logx.Warn("Rejected request with mismatched credentials.", "name", claims.Name)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			ctx := jwt.WithPrincipal(r.Context(), principal.Name)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
