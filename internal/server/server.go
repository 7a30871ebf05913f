// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"trendscope/internal/config"
	"trendscope/internal/domain/trend"
	"trendscope/internal/server/handlers"
)

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server with all routes wired.
func NewServer(
	cfg config.ServerConfig,
	auth handlers.AuthService,
	fetcher trend.Fetcher,
	generator handlers.DraftGenerator,
	posts handlers.PostRepository,
	defaultTrendLimit int,
	logger zerolog.Logger,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(90 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	authHandler := handlers.NewAuthHandler(auth)
	trendHandler := handlers.NewTrendHandler(fetcher, defaultTrendLimit)
	contentHandler := handlers.NewContentHandler(generator)
	postHandler := handlers.NewPostHandler(posts)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Post("/auth/login", authHandler.Login)

			// Everything below the gate requires a valid bearer token.
			r.Group(func(r chi.Router) {
				r.Use(handlers.RequireAuth(auth))

				r.Get("/trends", trendHandler.GetTrends)
				r.Post("/content/generate", contentHandler.Generate)
				r.Get("/posts", postHandler.ListPosts)
				r.Get("/analytics", postHandler.GetAnalytics)
			})
		})
	})

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// requestLogger logs one line per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
