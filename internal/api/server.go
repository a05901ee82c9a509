// Copyright (c) 2026 AGBR121. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/AGBR121/social-media-API/internal/platform/config"
	"github.com/AGBR121/social-media-API/internal/platform/constants"
	"github.com/AGBR121/social-media-API/internal/platform/middleware"
	"github.com/AGBR121/social-media-API/internal/social/favourite"
	"github.com/AGBR121/social-media-API/internal/social/feed"
	"github.com/AGBR121/social-media-API/internal/social/follow"
	"github.com/AGBR121/social-media-API/internal/social/like"
	"github.com/AGBR121/social-media-API/internal/social/notification"
	"github.com/AGBR121/social-media-API/internal/social/post"
	"github.com/AGBR121/social-media-API/internal/users/account"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Account serves user profile lookups.
	Account *account.Handler

	// Post manages the post lifecycle and visibility-aware listings.
	Post *post.Handler

	// Follow manages the follow graph.
	Follow *follow.Handler

	// Like manages per-user likes and the post counter behind them.
	Like *like.Handler

	// Favourite manages bookmarked posts.
	Favourite *favourite.Handler

	// Notification manages in-app notifications.
	Notification *notification.Handler

	// Feed serves the aggregated followed-user feed.
	Feed *feed.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/users", h.Account.Routes())
		api.Mount("/posts", h.Post.Routes())
		api.Mount("/follows", h.Follow.Routes())
		api.Mount("/likes", h.Like.Routes())
		api.Mount("/favourites", h.Favourite.Routes())
		api.Mount("/notifications", h.Notification.Routes())
		api.Mount("/feed", h.Feed.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
