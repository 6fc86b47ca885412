package main

import (
	"database/sql"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"linkstash/internal/auth"
	"linkstash/internal/config"
	"linkstash/internal/handlers"
	"linkstash/internal/middleware"
	"linkstash/internal/repo"
)

// newRouter builds the full HTTP surface. It is separate from main so
// integration tests can drive the real router against a mock database.
func newRouter(db *sql.DB, cfg config.Config) chi.Router {
	userRepo := repo.NewUserRepo(db)
	linkRepo := repo.NewLinkRepo(db)
	tokens := auth.NewTokenIssuer([]byte(cfg.JWTSecret), time.Duration(cfg.JWTExpireHours)*time.Hour)

	authHandler := &handlers.AuthHandler{UserRepo: userRepo, Tokens: tokens}
	userHandler := &handlers.UserHandler{UserRepo: userRepo}
	linkHandler := &handlers.LinkHandler{UserRepo: userRepo, LinkRepo: linkRepo}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(false))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/test", handlers.Test)

	// Public auth endpoints
	r.Group(func(r chi.Router) {
		r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	// Protected: the JWT middleware rejects bad tokens before any handler
	// (and any database lookup) runs.
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWT(tokens))
		r.Use(middleware.MaxBytes(cfg.MaxBodyBytes))
		r.Get("/user", userHandler.GetUser)
		r.Post("/add_link", linkHandler.AddLink)
		r.Get("/user_links", linkHandler.ListLinks)
		r.Delete("/delete_link/{id}", linkHandler.DeleteLink)
	})

	return r
}
