package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database, c config.Config) (Server, error) {
	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         c.Address(),
		Handler:      router,
		ReadTimeout:  c.ReadTimeout(),  // Timeout for reading the entire request
		WriteTimeout: c.WriteTimeout(), // Timeout for writing the response
		IdleTimeout:  c.IdleTimeout(),  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      config.Config
	startupTime time.Time
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(middleware.StripSlashes)

	// Apply CORS middleware
	acceptedOrigins := router.config.AcceptedOrigins
	chiRouter.Use(CORSCheckMiddleware(acceptedOrigins))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	responder := NewResponder(log.With().Str("handlerName", "router").Logger())
	chiRouter.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewRouteNotFoundError())
	})
	chiRouter.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responder.WriteError(w, errs.NewMethodNotAllowedError(r.Method))
	})

	// Initialize all handlers
	handlers := initializeHandlers(database, router.config, router.startupTime)

	setupRoutes(chiRouter, router.config.APIPrefix, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
