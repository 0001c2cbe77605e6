/*
Package main is the entry point for the postboard server.

It loads configuration, initializes the global logging system, connects the
database pool and runs migrations, starts the feed registry, sets up the HTTP
server, and handles operating system interrupt signals (SIGINT, SIGTERM) for
a graceful shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postboard/internal/app/db"
	"postboard/internal/app/feed"
	"postboard/internal/app/post"
	"postboard/internal/app/user"
	"postboard/internal/configs"
	"postboard/internal/handler"
	"postboard/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Bool("enforce_post_ownership", cfg.EnforcePostOwnership).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect the database pool and apply migrations
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database")
	}
	defer pool.Close()

	// Wire repositories and services
	userRepo := user.PgRepository{}
	postRepo := post.PgRepository{}

	userService := user.NewService(pool, userRepo, postRepo)
	postService := post.NewService(pool, postRepo, userRepo, cfg.EnforcePostOwnership)

	// The feed registry broadcasts the current post list to all subscribers.
	registry := feed.NewRegistry(postService.Snapshot)

	// Setup HTTP server and routes
	deps := &handler.AppDeps{
		Users:  userService,
		Posts:  postService,
		Feed:   registry,
		Config: cfg,
	}
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("Postboard Server starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	registry.Shutdown()

	logx.Info("Server gracefully stopped.")
}
