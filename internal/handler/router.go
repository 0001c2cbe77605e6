/*
Package handler provides the HTTP handlers and routing setup for postboard.

This file defines the main Router, applying middleware like logging, CORS,
and IP-based rate limiting before delegating to the resource handlers and the
WebSocket endpoint.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"postboard/internal/pkg/limiter"
	"postboard/internal/pkg/logx"
	"postboard/internal/pkg/resp"
)

const (
	// CreateRate limits entity creation per IP (events per second).
	CreateRate = 1.0

	// CreateBurst is the creation burst allowance per IP.
	CreateBurst = 5
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes the per-IP rate limiter, configures CORS, and applies global
// and per-route middleware.
func Router(deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(rate.Limit(CreateRate), CreateBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Postboard Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Post("/auth/token", HandleIssueToken(deps))

	r.Route("/users", func(users chi.Router) {
		users.With(createLimiter.Middleware).Post("/", HandleCreateUser(deps))
		users.Get("/", HandleListUsers(deps))
		users.Get("/{id}", HandleGetUser(deps))
		users.With(RequireAuth(deps)).Delete("/{id}", HandleDeleteUser(deps))
	})

	r.Route("/posts", func(posts chi.Router) {
		posts.With(RequireAuth(deps), createLimiter.Middleware).Post("/", HandleCreatePost(deps))
		posts.Get("/", HandleListPosts(deps))
		posts.Get("/{id}", HandleGetPost(deps))
		posts.With(RequireAuth(deps)).Delete("/{id}", HandleDeletePost(deps))
	})

	r.Get("/ws", HandleWebSocket(wsUpgrader, deps))

	return r
}
